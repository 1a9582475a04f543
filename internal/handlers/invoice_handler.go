package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/audit"
	"github.com/germanygsg/medrec/internal/domain/billing"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
	ucInvoice "github.com/germanygsg/medrec/internal/usecase/invoice"
)

// ======================================================
// HANDLER
// ======================================================

type InvoiceHandler struct {
	db         *gorm.DB
	generateUC *ucInvoice.GenerateInvoice
	audit      audit.Sink
}

func NewInvoiceHandler(
	db *gorm.DB,
	generateUC *ucInvoice.GenerateInvoice,
	auditSink audit.Sink,
) *InvoiceHandler {
	return &InvoiceHandler{
		db:         db,
		generateUC: generateUC,
		audit:      auditSink,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GenerateInvoiceRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// GENERATE
// ======================================================

func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Appointment id is required.")
		return
	}

	inv, err := h.generateUC.Execute(c.Request.Context(), req.AppointmentID, actorID(c))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.Conflict(c, be.Code, be.Message)
			return
		}
		log.Error().Err(err).Uint("appointment_id", req.AppointmentID).Msg("invoice generation failed")
		httperr.Internal(c, "failed_to_generate_invoice", "Failed to generate invoice.")
		return
	}

	c.JSON(http.StatusCreated, inv)
}

// ======================================================
// LIST
// ======================================================

func (h *InvoiceHandler) List(c *gin.Context) {
	start, end, err := parseRange(c, "start", "end")
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "Invalid start/end bound.")
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Preload("Appointment").
		Preload("Appointment.Patient")

	if start != nil {
		q = q.Where("issue_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("issue_date <= ?", *end)
	}

	var invoices []models.Invoice
	if err := q.
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {

		httperr.Internal(c, "failed_to_list_invoices", "Failed to fetch invoices.")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// ======================================================
// GET
// ======================================================

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid invoice id.")
		return
	}

	var inv models.Invoice
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Appointment").
		Preload("Appointment.Patient").
		Preload("Appointment.Treatments.Treatment").
		First(&inv, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_invoice", "Failed to fetch invoice.")
		return
	}

	c.JSON(http.StatusOK, inv)
}

// ======================================================
// BY APPOINTMENT
// ======================================================

func (h *InvoiceHandler) GetByAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var inv models.Invoice
	if err := h.db.WithContext(c.Request.Context()).
		Where("appointment_id = ?", id).
		First(&inv).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "invoice_not_found", "No invoice for this appointment.")
			return
		}
		httperr.Internal(c, "failed_to_get_invoice", "Failed to fetch invoice.")
		return
	}

	c.JSON(http.StatusOK, inv)
}

// ======================================================
// STATUS
// ======================================================

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid invoice id.")
		return
	}

	var req UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	if !billing.IsValidStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Status must be unpaid, paid or void.")
		return
	}

	var inv models.Invoice
	if err := h.db.WithContext(c.Request.Context()).First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_invoice", "Failed to fetch invoice.")
		return
	}

	// Status is the only mutable field; the total stays as generated.
	inv.Status = req.Status
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Update("status", req.Status).Error; err != nil {

		log.Error().Err(err).Uint("invoice_id", id).Msg("invoice status update failed")
		httperr.Internal(c, "failed_to_update_invoice", "Failed to update invoice.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "invoice_status_changed",
		Entity:   "invoice",
		EntityID: &inv.ID,
		Metadata: map[string]any{"status": req.Status},
	})

	c.JSON(http.StatusOK, inv)
}

// ======================================================
// DELETE
// ======================================================

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid invoice id.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Delete(&models.Invoice{}, id).Error; err != nil {

		log.Error().Err(err).Uint("invoice_id", id).Msg("invoice delete failed")
		httperr.Internal(c, "failed_to_delete_invoice", "Failed to delete invoice.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "invoice_deleted",
		Entity:   "invoice",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
