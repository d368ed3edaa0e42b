package middleware

import (
	"net/http"
	"strings"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const actorKey = "actor"

// RequireAuth validates the bearer access token and loads the caller into the
// request context as a service.Actor.
func RequireAuth(tokenSvc service.TokenService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing bearer token"})
			return
		}

		claims, err := tokenSvc.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), service.TokenTypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			log.Warn().Err(err).Uint("user_id", claims.UserID).Msg("Token references unknown user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not found"})
			return
		}

		c.Set(actorKey, service.Actor{
			UserID:   user.ID,
			OrgID:    user.OrgID,
			Role:     user.Role,
			FullName: user.FullName,
		})
		c.Next()
	}
}

// RequireInstructor gates a route to instructor or admin callers. Must run
// after RequireAuth.
func RequireInstructor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if !actor.IsInstructor() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Instructor role required"})
			return
		}
		c.Next()
	}
}

// GetActor returns the authenticated caller set by RequireAuth.
func GetActor(c *gin.Context) service.Actor {
	if value, exists := c.Get(actorKey); exists {
		if actor, ok := value.(service.Actor); ok {
			return actor
		}
	}
	return service.Actor{}
}
