package main

import (
	"context"
	"net/http"
	"time"

	"github.com/adil-123-dev/Insight-loop/config"
	"github.com/adil-123-dev/Insight-loop/database"
	_ "github.com/adil-123-dev/Insight-loop/docs" // Swagger docs
	"github.com/adil-123-dev/Insight-loop/internal/controller"
	"github.com/adil-123-dev/Insight-loop/internal/logger"
	"github.com/adil-123-dev/Insight-loop/internal/middleware"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Insight-loop Course Feedback API
// @version 1.0
// @description Multi-tenant course feedback platform: organizations, feedback forms with typed questions, student responses and instructor analytics.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // *gorm.DB
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewOrganizationRepository,
			repository.NewUserRepository,
			repository.NewCategoryRepository,
			repository.NewFormRepository,
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
			repository.NewAnalyticsReader,
		),

		// Services
		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewOrganizationService,
			service.NewCategoryService,
			service.NewFormService,
			service.NewQuestionService,
			service.NewResponseService,
			service.NewSummaryService,
			service.NewQuestionAnalyticsService,
			service.NewTrendsService,
			service.NewSentimentService,
			service.NewReportService,
		),

		// Controllers
		fx.Provide(
			controller.NewAuthController,
			controller.NewOrganizationController,
			controller.NewCategoryController,
			controller.NewFormController,
			controller.NewQuestionController,
			controller.NewResponseController,
			controller.NewAnalyticsController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokenSvc service.TokenService,
	userRepo repository.UserRepository,
	authCtrl *controller.AuthController,
	orgCtrl *controller.OrganizationController,
	categoryCtrl *controller.CategoryController,
	formCtrl *controller.FormController,
	questionCtrl *controller.QuestionController,
	responseCtrl *controller.ResponseController,
	analyticsCtrl *controller.AnalyticsController,
) {
	api := router.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/refresh", authCtrl.Refresh)
	api.POST("/organizations", orgCtrl.CreateOrganization)
	api.GET("/organizations", orgCtrl.ListOrganizations)
	api.GET("/organizations/:org_id", orgCtrl.GetOrganization)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(tokenSvc, userRepo))
	{
		authed.GET("/auth/me", authCtrl.Me)
		authed.GET("/forms", formCtrl.ListForms)
		authed.GET("/forms/:form_id", formCtrl.GetForm)
		authed.GET("/forms/:form_id/questions", questionCtrl.ListQuestions)
		authed.POST("/forms/:form_id/responses", responseCtrl.SubmitResponse)
	}

	// Instructor/admin routes
	instructor := api.Group("")
	instructor.Use(middleware.RequireAuth(tokenSvc, userRepo), middleware.RequireInstructor())
	{
		instructor.GET("/users", orgCtrl.ListUsers)

		instructor.POST("/categories", categoryCtrl.CreateCategory)
		instructor.GET("/categories", categoryCtrl.ListCategories)
		instructor.PUT("/categories/:category_id", categoryCtrl.UpdateCategory)
		instructor.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		instructor.POST("/forms", formCtrl.CreateForm)
		instructor.PUT("/forms/:form_id", formCtrl.UpdateForm)
		instructor.DELETE("/forms/:form_id", formCtrl.DeleteForm)
		instructor.PATCH("/forms/:form_id/status", formCtrl.UpdateFormStatus)

		instructor.POST("/forms/:form_id/questions", questionCtrl.AddQuestion)
		instructor.PATCH("/forms/:form_id/questions/reorder", questionCtrl.ReorderQuestions)
		instructor.PUT("/questions/:question_id", questionCtrl.UpdateQuestion)
		instructor.DELETE("/questions/:question_id", questionCtrl.DeleteQuestion)

		instructor.GET("/forms/:form_id/responses", responseCtrl.ListResponses)
		instructor.GET("/forms/:form_id/responses/export", responseCtrl.ExportResponsesCSV)
		instructor.GET("/responses/:response_id", responseCtrl.GetResponse)

		instructor.GET("/forms/:form_id/analytics/summary", analyticsCtrl.GetSummary)
		instructor.GET("/forms/:form_id/analytics/questions/:question_id", analyticsCtrl.GetQuestionAnalytics)
		instructor.GET("/forms/:form_id/analytics/trends", analyticsCtrl.GetTrends)
		instructor.GET("/forms/:form_id/analytics/sentiment", analyticsCtrl.GetSentiment)
		instructor.GET("/forms/:form_id/analytics/export", analyticsCtrl.ExportReport)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Insight-loop API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Organization{},
		&model.User{},
		&model.Category{},
		&model.Form{},
		&model.Question{},
		&model.Response{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
