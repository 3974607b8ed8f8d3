package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/audit"
	"github.com/divinasnails/salon-manager/internal/config"
	"github.com/divinasnails/salon-manager/internal/handlers"
	infraRepo "github.com/divinasnails/salon-manager/internal/infra/repository"
	"github.com/divinasnails/salon-manager/internal/middleware"
	"github.com/divinasnails/salon-manager/internal/stats"
	"github.com/divinasnails/salon-manager/internal/timezone"
	ucAppointment "github.com/divinasnails/salon-manager/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	statsService := stats.New(db, rdb, loc)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
		loc,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)
	employeeHandler := handlers.NewEmployeeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		updateStatusUC,
		deleteAppointmentUC,
	)

	statsHandler := handlers.NewStatsHandler(statsService)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================

	// ------------------------------
	// AUTH
	// ------------------------------
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)
		secured.GET("/audit-logs", auditLogsHandler.List)
	}

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	r.GET("/appointments", appointmentHandler.List)
	r.POST("/appointments", appointmentHandler.Create)
	r.PUT("/appointments/:id", appointmentHandler.UpdateStatus)
	r.DELETE("/appointments/:id", appointmentHandler.Delete)

	// ------------------------------
	// CUSTOMERS
	// ------------------------------
	r.GET("/customers", customerHandler.List)
	r.POST("/customers", customerHandler.Create)
	r.PUT("/customers/:id", customerHandler.Update)
	r.DELETE("/customers/:id", customerHandler.Delete)

	// ------------------------------
	// EMPLOYEES
	// ------------------------------
	r.GET("/employees", employeeHandler.List)
	r.POST("/employees", employeeHandler.Create)
	r.PUT("/employees/:id", employeeHandler.Update)

	// ------------------------------
	// SERVICES
	// ------------------------------
	r.GET("/services", serviceHandler.List)
	r.POST("/services", serviceHandler.Create)
	r.PUT("/services/:id", serviceHandler.Update)

	// ------------------------------
	// DASHBOARD
	// ------------------------------
	r.GET("/stats", statsHandler.Get)
}
