package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/analytics"
	"github.com/capyme/capyme-api/internal/application/auth"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	BusinessUC     *usecase.BusinessUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProgramUC      *usecase.ProgramUseCase
	QuestionUC     *usecase.QuestionUseCase
	ApplicationUC  *usecase.ApplicationUseCase
	CourseUC       *usecase.CourseUseCase
	AnnouncementUC *usecase.AnnouncementUseCase
	ResourceLinkUC *usecase.ResourceLinkUseCase
	FinancingUC    *usecase.FinancingUseCase
	WorkerUC       *usecase.WorkerUseCase
	ContactUC      *usecase.ContactUseCase
	DashboardUC    *analytics.DashboardUseCase
	UserRepo       repository.UserRepository
	JWTSecret      string
}

// Router registra las rutas de la API. Convención de acceso: lecturas para
// cualquier autenticado, mutaciones para el staff, borrados solo admin.
// Negocios, postulaciones y financiamiento son la excepción: cualquier
// autenticado crea y actualiza, con la propiedad vigilada en el caso de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret, deps.UserRepo)
	staffOnly := RequireStaff()
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público salvo el perfil)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/perfil", authRequired, authHandler.Me)

	// Usuarios
	users := api.Group("/usuarios", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Put("/perfil", userHandler.UpdateProfile)
	users.Get("/", staffOnly, userHandler.List)
	users.Get("/:id", staffOnly, userHandler.GetByID)
	users.Put("/:id", adminOnly, userHandler.AdminUpdate)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Categorías (lectura pública)
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authRequired, staffOnly, categoryHandler.Create)
	categories.Put("/:id", authRequired, staffOnly, categoryHandler.Update)
	categories.Delete("/:id", authRequired, adminOnly, categoryHandler.Delete)

	// Negocios (propiedad vigilada en el caso de uso)
	businesses := api.Group("/negocios", authRequired)
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses.Get("/", businessHandler.List)
	businesses.Get("/mis-negocios", businessHandler.ListMine)
	businesses.Get("/:id", businessHandler.GetByID)
	businesses.Post("/", businessHandler.Create)
	businesses.Put("/:id", businessHandler.Update)
	businesses.Delete("/:id", adminOnly, businessHandler.Delete)

	// Programas
	programs := api.Group("/programas", authRequired)
	programHandler := NewProgramHandler(deps.ProgramUC)
	programs.Get("/", programHandler.List)
	programs.Get("/:id", programHandler.GetByID)
	programs.Get("/:id/preguntas", programHandler.ListQuestions)
	programs.Post("/", staffOnly, programHandler.Create)
	programs.Put("/:id", staffOnly, programHandler.Update)
	programs.Delete("/:id", adminOnly, programHandler.Delete)
	programs.Post("/:id/preguntas", staffOnly, programHandler.AssignQuestion)
	programs.Delete("/:id/preguntas/:preguntaId", staffOnly, programHandler.UnassignQuestion)

	// Preguntas (catálogo, solo staff)
	questions := api.Group("/preguntas", authRequired, staffOnly)
	questionHandler := NewQuestionHandler(deps.QuestionUC)
	questions.Get("/", questionHandler.List)
	questions.Get("/:id", questionHandler.GetByID)
	questions.Post("/", questionHandler.Create)
	questions.Put("/:id", questionHandler.Update)
	questions.Delete("/:id", adminOnly, questionHandler.Delete)

	// Postulaciones
	applications := api.Group("/postulaciones", authRequired)
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	applications.Get("/", applicationHandler.List)
	applications.Get("/mis-postulaciones", applicationHandler.ListMine)
	applications.Get("/:id", applicationHandler.GetByID)
	applications.Post("/", applicationHandler.Create)
	applications.Put("/:id/respuestas", applicationHandler.UpdateAnswers)
	applications.Patch("/:id/estado", staffOnly, applicationHandler.SetState)
	applications.Delete("/:id", adminOnly, applicationHandler.Delete)

	// Cursos e inscripciones
	courses := api.Group("/cursos", authRequired)
	courseHandler := NewCourseHandler(deps.CourseUC)
	courses.Get("/", courseHandler.List)
	courses.Get("/:id", courseHandler.GetByID)
	courses.Post("/", staffOnly, courseHandler.Create)
	courses.Put("/:id", staffOnly, courseHandler.Update)
	courses.Delete("/:id", adminOnly, courseHandler.Delete)
	courses.Post("/:id/inscripcion", courseHandler.Enroll)
	courses.Get("/:id/inscritos", staffOnly, courseHandler.ListEnrollments)

	// Avisos
	announcements := api.Group("/avisos", authRequired)
	announcementHandler := NewAnnouncementHandler(deps.AnnouncementUC)
	announcements.Get("/", announcementHandler.List)
	announcements.Get("/:id", announcementHandler.GetByID)
	announcements.Post("/", staffOnly, announcementHandler.Create)
	announcements.Put("/:id", staffOnly, announcementHandler.Update)
	announcements.Delete("/:id", adminOnly, announcementHandler.Delete)

	// Enlaces de recursos
	links := api.Group("/enlaces", authRequired)
	linkHandler := NewResourceLinkHandler(deps.ResourceLinkUC)
	links.Get("/", linkHandler.List)
	links.Get("/:id", linkHandler.GetByID)
	links.Post("/", staffOnly, linkHandler.Create)
	links.Put("/:id", staffOnly, linkHandler.Update)
	links.Delete("/:id", adminOnly, linkHandler.Delete)

	// Financiamiento (propiedad vigilada en el caso de uso)
	financing := api.Group("/financiamiento", authRequired)
	financingHandler := NewFinancingHandler(deps.FinancingUC)
	financing.Get("/", financingHandler.List)
	financing.Get("/:id", financingHandler.GetByID)
	financing.Post("/", financingHandler.Create)
	financing.Put("/:id", financingHandler.Update)
	financing.Patch("/:id/estado", staffOnly, financingHandler.SetState)
	financing.Delete("/:id", adminOnly, financingHandler.Delete)

	// Trabajadores JCF (solo staff)
	workers := api.Group("/trabajadores", authRequired, staffOnly)
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Get("/", workerHandler.List)
	workers.Get("/:id", workerHandler.GetByID)
	workers.Post("/", workerHandler.Create)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", adminOnly, workerHandler.Delete)

	// Contacto (lectura pública, upsert de admin)
	contact := api.Group("/contacto")
	contactHandler := NewContactHandler(deps.ContactUC)
	contact.Get("/", contactHandler.Get)
	contact.Put("/", authRequired, adminOnly, contactHandler.Update)

	// Dashboard (staff salvo las estadísticas del cliente)
	dashboard := api.Group("/dashboard", authRequired)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/cliente/estadisticas", RequireRole(entity.RoleCliente), dashboardHandler.ClientStats)
	dashboard.Get("/estadisticas", staffOnly, dashboardHandler.GeneralStats)
	dashboard.Get("/graficas", staffOnly, dashboardHandler.Charts)
	dashboard.Get("/recientes", staffOnly, dashboardHandler.RecentActivity)
	dashboard.Get("/top-cursos", staffOnly, dashboardHandler.TopCourses)
}
