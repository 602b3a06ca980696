package routes

import (
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pauloryan091/agmais/internal/audit"
	"github.com/pauloryan091/agmais/internal/config"
	dbpkg "github.com/pauloryan091/agmais/internal/db"
	"github.com/pauloryan091/agmais/internal/handlers"
	"github.com/pauloryan091/agmais/internal/health"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/imaging"
	infraRepo "github.com/pauloryan091/agmais/internal/infra/repository"
	"github.com/pauloryan091/agmais/internal/metrics"
	"github.com/pauloryan091/agmais/internal/middleware"
	"github.com/pauloryan091/agmais/internal/notifier"
	"github.com/pauloryan091/agmais/internal/session"
	"github.com/pauloryan091/agmais/internal/timezone"
	ucAppointment "github.com/pauloryan091/agmais/internal/usecase/appointment"
	ucAuth "github.com/pauloryan091/agmais/internal/usecase/auth"
	"github.com/pauloryan091/agmais/internal/usecase/catalog"
	ucDashboard "github.com/pauloryan091/agmais/internal/usecase/dashboard"
	"github.com/pauloryan091/agmais/internal/validators"
)

// Deps are the process-wide singletons built by main.
type Deps struct {
	Config   *config.Config
	Log      logrus.FieldLogger
	Store    *dbpkg.Store
	Sessions *session.Manager
	Notifier notifier.Notifier
	Audit    *audit.Dispatcher
	Images   imaging.ObjectStore
	Clock    *timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "route_not_found", "Rota não encontrada")
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.Store)
	clientRepo := infraRepo.NewClientGormRepository(d.Store)
	serviceRepo := infraRepo.NewServiceGormRepository(d.Store)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.Store)
	dashboardRepo := infraRepo.NewDashboardGormRepository(d.Store)

	auditLogger := audit.New(d.Store)

	var resolver validators.Resolver
	if cfg.CheckDomain {
		resolver = net.DefaultResolver
	}

	// ======================================================
	// 🧠 USE CASES - AUTH
	// ======================================================
	registerUC := ucAuth.NewRegister(userRepo, d.Audit, resolver)
	loginUC := ucAuth.NewLogin(userRepo, d.Sessions, d.Audit)
	logoutUC := ucAuth.NewLogout(d.Sessions)
	profileUC := ucAuth.NewGetProfile(userRepo)
	updateProfileUC := ucAuth.NewUpdateProfile(userRepo, d.Sessions, d.Audit)

	// ======================================================
	// 🧠 USE CASES - CATALOG
	// ======================================================
	clientsUC := catalog.NewClients(clientRepo, d.Audit)
	servicesUC := catalog.NewServices(serviceRepo, d.Audit)
	uploadImageUC := catalog.NewUploadServiceImage(serviceRepo, d.Images, cfg.ImageMaxWidth, d.Audit)

	// ======================================================
	// 🧠 USE CASES - APPOINTMENTS
	// ======================================================
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, d.Notifier, d.Audit)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, d.Audit)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit)
	setStatusUC := ucAppointment.NewSetStatus(appointmentRepo, d.Notifier, d.Audit)

	// ======================================================
	// 🧠 USE CASES - DASHBOARD
	// ======================================================
	statsUC := ucDashboard.NewGetStats(dashboardRepo, d.Clock, cfg.UnitPrice)
	dashboardUC := ucDashboard.NewGetDashboard(dashboardRepo, statsUC)
	searchUC := ucDashboard.NewSearch(dashboardRepo)
	notificationsUC := ucDashboard.NewListNotifications(dashboardRepo, d.Clock)
	activityUC := ucDashboard.NewRecentActivity(dashboardRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, d.Sessions, cfg.CookieSecure)
	meHandler := handlers.NewMeHandler(profileUC, updateProfileUC)
	clientHandler := handlers.NewClientHandler(clientsUC)
	serviceHandler := handlers.NewServiceHandler(servicesUC, uploadImageUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		createAppointmentUC,
		getAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		setStatusUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(statsUC, dashboardUC, searchUC, notificationsUC, activityUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)
	storeHandler := handlers.NewStoreHandler(d.Store)

	// ======================================================
	// 🩺 OPERAÇÃO
	// ======================================================
	r.GET("/health", health.Handler(d.Store.SQL, 2*time.Second))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if local, ok := d.Images.(*imaging.LocalStore); ok {
		r.Static(cfg.ImageBaseURL, local.Dir())
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/verificar-banco", storeHandler.Check)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst, d.Log)

		open := api.Group("/")
		open.Use(middleware.RequireStore(d.Store))
		{
			open.POST("/cadastro", limiter.Handler(), authHandler.Register)
			open.POST("/login", limiter.Handler(), authHandler.Login)
			open.GET("/logout", authHandler.Logout)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.RequireStore(d.Store))
		secured.Use(middleware.AuthMiddleware(d.Sessions))
		{
			secured.GET("/usuario", meHandler.GetMe)
			secured.PUT("/usuario/atualizar", meHandler.UpdateMe)

			// ------------------------------
			// SERVIÇOS
			// ------------------------------
			secured.GET("/servicos", serviceHandler.List)
			secured.POST("/servicos", serviceHandler.Create)
			secured.GET("/servicos/:id", serviceHandler.Get)
			secured.PUT("/servicos/:id", serviceHandler.Update)
			secured.DELETE("/servicos/:id", serviceHandler.Delete)
			secured.POST("/servicos/:id/imagem", serviceHandler.UploadImage)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/clientes", clientHandler.List)
			secured.POST("/clientes", clientHandler.Create)
			secured.GET("/clientes/:id", clientHandler.Get)
			secured.PUT("/clientes/:id", clientHandler.Update)
			secured.DELETE("/clientes/:id", clientHandler.Delete)

			// ------------------------------
			// AGENDAMENTOS
			// ------------------------------
			secured.GET("/agendamentos", appointmentHandler.List)
			secured.POST("/agendamentos", appointmentHandler.Create)
			secured.GET("/agendamentos/:id", appointmentHandler.Get)
			secured.PUT("/agendamentos/:id", appointmentHandler.Update)
			secured.DELETE("/agendamentos/:id", appointmentHandler.Delete)
			secured.PUT("/agendamentos/:id/status", appointmentHandler.SetStatus)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/estatisticas", dashboardHandler.Stats)
			secured.GET("/dashboard/completo", dashboardHandler.Full)
			secured.GET("/busca/:termo", dashboardHandler.Search)
			secured.GET("/notificacoes", dashboardHandler.Notifications)
			secured.GET("/atividade-recente", dashboardHandler.RecentActivity)

			secured.GET("/auditoria", auditLogsHandler.List)
		}
	}
}
