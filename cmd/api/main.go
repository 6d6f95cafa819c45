package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/capyme/capyme-api/internal/application/analytics"
	"github.com/capyme/capyme-api/internal/application/auth"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/infrastructure/postgres"
	httpRouter "github.com/capyme/capyme-api/internal/interfaces/http"
	"github.com/capyme/capyme-api/pkg/config"
	"github.com/capyme/capyme-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET no definido; los tokens se firmarán con clave vacía")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	programRepo := postgres.NewProgramRepository(pool)
	questionRepo := postgres.NewQuestionRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	courseRepo := postgres.NewCourseRepository(pool)
	enrollmentRepo := postgres.NewEnrollmentRepository(pool)
	announcementRepo := postgres.NewAnnouncementRepository(pool)
	linkRepo := postgres.NewResourceLinkRepository(pool)
	financingRepo := postgres.NewFinancingRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	businessUC := usecase.NewBusinessUseCase(businessRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	programUC := usecase.NewProgramUseCase(programRepo, questionRepo, categoryRepo)
	questionUC := usecase.NewQuestionUseCase(questionRepo)
	applicationUC := usecase.NewApplicationUseCase(applicationRepo, businessRepo, programRepo, txRunner)
	courseUC := usecase.NewCourseUseCase(courseRepo, enrollmentRepo, txRunner)
	announcementUC := usecase.NewAnnouncementUseCase(announcementRepo)
	linkUC := usecase.NewResourceLinkUseCase(linkRepo)
	financingUC := usecase.NewFinancingUseCase(financingRepo, businessRepo)
	workerUC := usecase.NewWorkerUseCase(workerRepo, applicationRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, businessRepo, applicationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CAPYME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		BusinessUC:     businessUC,
		CategoryUC:     categoryUC,
		ProgramUC:      programUC,
		QuestionUC:     questionUC,
		ApplicationUC:  applicationUC,
		CourseUC:       courseUC,
		AnnouncementUC: announcementUC,
		ResourceLinkUC: linkUC,
		FinancingUC:    financingUC,
		WorkerUC:       workerUC,
		ContactUC:      contactUC,
		DashboardUC:    dashboardUC,
		UserRepo:       userRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		log.Debug().Str("addr", cfg.HTTP.Addr()).Msg("levantando servidor HTTP")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
