package pkg

import (
	"context"
	"os"

	"InternLink/internal/application"
	"InternLink/internal/auth"
	"InternLink/internal/config"
	"InternLink/internal/forum"
	"InternLink/internal/posting"
	"InternLink/internal/profile"
	"InternLink/pkg/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var EchoModules = fx.Module("echo",
	fx.Provide(
		config.NewLogger,
		NewEchoServer,
		config.NewMongoDBConfig,
		config.NewMongoDBClient,
		config.NewResendConfig,
		config.NewEmailService,

		auth.NewIdentityRepository,
		func(r *auth.IdentityRepository) auth.IdentityStore { return r },
		auth.NewAuthService,
		auth.NewAuthHandler,

		posting.NewPostingRepository,
		func(r *posting.PostingRepository) posting.PostingStore { return r },
		posting.NewPostingService,
		posting.NewPostingHandler,

		application.NewApplicationRepository,
		func(r *application.ApplicationRepository) application.ApplicationStore { return r },
		application.NewApplicationService,
		application.NewApplicationHandler,
		func(s *application.ApplicationService) posting.ApplicationStatusFinder { return s },
		func(s *posting.PostingService) application.PostingFinder { return s },
		func(e *config.EmailService) application.Mailer { return e },

		forum.NewForumRepository,
		func(r *forum.ForumRepository) forum.MessageStore { return r },
		func(r *forum.ForumRepository) forum.MessageSubscriber { return r },
		forum.NewForumService,
		forum.NewForumHandler,

		profile.NewProfileRepository,
		func(r *profile.ProfileRepository) profile.ProfileStore { return r },
		func(s *application.ApplicationService) profile.ApplicationLister { return s },
		profile.NewProfileService,
		profile.NewProfileHandler,
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),
	fx.Invoke(config.UniqueApplicationIndex),
	fx.Invoke(RegisterRoutes),
)

func NewEchoServer(lc fx.Lifecycle, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{origin},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Server starting", zap.String("port", port))
			go func() {
				if err := e.Start(":" + port); err != nil {
					log.Error("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	authHandler *auth.AuthHandler,
	postingHandler *posting.PostingHandler,
	applicationHandler *application.ApplicationHandler,
	forumHandler *forum.ForumHandler,
	profileHandler *profile.ProfileHandler,
) {
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)

	api := e.Group("/api")
	api.Use(middleware.JWTMiddleware)
	api.Use(middleware.CasbinMiddleware)

	// intern views
	api.GET("/internships", postingHandler.ListInternships)
	api.GET("/internships/:id", postingHandler.GetInternship)
	api.POST("/internships/:id/apply", applicationHandler.Apply)
	api.GET("/profile", profileHandler.GetProfile)
	api.PUT("/profile", profileHandler.UpdateProfile)
	api.GET("/discussion", forumHandler.ListMessages)
	api.POST("/discussion", forumHandler.PostMessage)
	api.GET("/discussion/stream", forumHandler.StreamMessages)

	// recruiter console
	api.GET("/recruiter/internships", postingHandler.ListCompanyInternships)
	api.POST("/recruiter/internships", postingHandler.CreateInternship)
	api.DELETE("/recruiter/internships/:id", postingHandler.DeleteInternship)
	api.GET("/recruiter/internships/:id/applications", applicationHandler.PendingByInternship)
	api.POST("/recruiter/applications/:id/approve", applicationHandler.Approve)
	api.POST("/recruiter/applications/:id/reject", applicationHandler.Reject)
}
