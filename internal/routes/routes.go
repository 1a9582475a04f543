package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/audit"
	"github.com/germanygsg/medrec/internal/auth"
	"github.com/germanygsg/medrec/internal/config"
	"github.com/germanygsg/medrec/internal/handlers"
	infraRepo "github.com/germanygsg/medrec/internal/infra/repository"
	"github.com/germanygsg/medrec/internal/middleware"
	"github.com/germanygsg/medrec/internal/ratelimit"
	"github.com/germanygsg/medrec/internal/sequence"
	ucAdmin "github.com/germanygsg/medrec/internal/usecase/admin"
	ucAppointment "github.com/germanygsg/medrec/internal/usecase/appointment"
	ucInvoice "github.com/germanygsg/medrec/internal/usecase/invoice"
	ucPatient "github.com/germanygsg/medrec/internal/usecase/patient"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, limiter ratelimit.Store) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(limiter))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	patientRepo := infraRepo.NewPatientGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	billingRepo := infraRepo.NewBillingGormRepository(db)
	reportingRepo := infraRepo.NewReportingGormRepository(db)
	adminRepo := infraRepo.NewAdminGormRepository(db)

	seq := sequence.NewGenerator(db)
	sessions := auth.NewSessions(db, cfg.Session)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deletePatientUC := ucPatient.NewDeletePatient(
		patientRepo,
		auditDispatcher,
	)

	generateInvoiceUC := ucInvoice.NewGenerateInvoice(
		billingRepo,
		seq,
		auditDispatcher,
	)

	wipeDataUC := ucAdmin.NewWipeData(
		adminRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)
	meHandler := handlers.NewMeHandler(db)

	patientHandler := handlers.NewPatientHandler(db, seq, deletePatientUC, auditDispatcher)
	treatmentHandler := handlers.NewTreatmentHandler(db, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		deleteAppointmentUC,
		auditDispatcher,
	)
	invoiceHandler := handlers.NewInvoiceHandler(db, generateInvoiceUC, auditDispatcher)

	dashboardHandler := handlers.NewDashboardHandler(reportingRepo)
	exportHandler := handlers.NewExportHandler(reportingRepo)
	adminHandler := handlers.NewAdminHandler(wipeDataUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/providers", authHandler.Providers)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			secured.GET("/me", meHandler.Get)
			secured.POST("/auth/logout", authHandler.Logout)

			// Patients
			secured.POST("/patients", patientHandler.Create)
			secured.GET("/patients", patientHandler.List)
			secured.GET("/patients/:id", patientHandler.Get)
			secured.PATCH("/patients/:id", patientHandler.Update)
			secured.DELETE("/patients/:id", patientHandler.Delete)
			secured.GET("/patients/:id/appointments", patientHandler.ListAppointments)

			// Treatments
			secured.POST("/treatments", treatmentHandler.Create)
			secured.GET("/treatments", treatmentHandler.List)
			secured.GET("/treatments/:id", treatmentHandler.Get)
			secured.PATCH("/treatments/:id", treatmentHandler.Update)
			secured.DELETE("/treatments/:id", treatmentHandler.Delete)

			// Appointments
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/treatments/:treatmentId/notes", appointmentHandler.UpdateTreatmentNotes)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.GET("/appointments/:id/invoice", invoiceHandler.GetByAppointment)

			// Invoices
			secured.POST("/invoices", invoiceHandler.Generate)
			secured.GET("/invoices", invoiceHandler.List)
			secured.GET("/invoices/:id", invoiceHandler.Get)
			secured.PATCH("/invoices/:id/status", invoiceHandler.UpdateStatus)
			secured.DELETE("/invoices/:id", invoiceHandler.Delete)

			// Dashboard
			secured.GET("/dashboard/stats", dashboardHandler.Stats)
			secured.GET("/dashboard/appointments-by-month", dashboardHandler.AppointmentsByMonth)
			secured.GET("/dashboard/revenue-by-month", dashboardHandler.RevenueByMonth)

			// Export
			secured.GET("/export/invoices", exportHandler.Invoices)

			// Admin
			secured.POST("/admin/wipe", adminHandler.Wipe)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
