package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/audit"
	domain "github.com/germanygsg/medrec/internal/domain/appointment"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
	ucAppointment "github.com/germanygsg/medrec/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db       *gorm.DB
	createUC *ucAppointment.CreateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	audit    audit.Sink
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	auditSink audit.Sink,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		createUC: createUC,
		deleteUC: deleteUC,
		audit:    auditSink,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID       uint       `json:"patient_id" binding:"required"`
	AppointmentDate *time.Time `json:"appointment_date"`

	BloodPressure   string `json:"blood_pressure"`
	RespirationRate *int   `json:"respiration_rate" binding:"omitempty,min=0"`
	HeartRate       *int   `json:"heart_rate" binding:"omitempty,min=0"`
	BorgScale       *int   `json:"borg_scale" binding:"omitempty,min=0,max=10"`

	Status       string `json:"status"`
	TreatmentIDs []uint `json:"treatment_ids"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateTreatmentNotesRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID:       req.PatientID,
		AppointmentDate: req.AppointmentDate,
		BloodPressure:   req.BloodPressure,
		RespirationRate: req.RespirationRate,
		HeartRate:       req.HeartRate,
		BorgScale:       req.BorgScale,
		Status:          req.Status,
		TreatmentIDs:    req.TreatmentIDs,
	}, actorID(c))

	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		log.Error().Err(err).Uint("patient_id", req.PatientID).Msg("appointment create failed")
		httperr.Internal(c, "failed_to_create_appointment", "Failed to create appointment.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	start, end, err := parseRange(c, "start", "end")
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "Invalid start/end bound.")
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Preload("Patient")

	if start != nil {
		q = q.Where("appointment_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("appointment_date <= ?", *end)
	}

	var appointments []models.Appointment
	if err := q.
		Order("appointment_date DESC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Failed to fetch appointments.")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var ap models.Appointment
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Patient").
		Preload("Treatments.Treatment").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Failed to fetch appointment.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	if !domain.IsValidStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Status must be scheduled, completed or cancelled.")
		return
	}

	var ap models.Appointment
	if err := h.db.WithContext(c.Request.Context()).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Failed to fetch appointment.")
		return
	}

	ap.Status = req.Status
	if err := h.db.WithContext(c.Request.Context()).Save(&ap).Error; err != nil {
		log.Error().Err(err).Uint("appointment_id", id).Msg("appointment status update failed")
		httperr.Internal(c, "failed_to_update_appointment", "Failed to update appointment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// TREATMENT NOTES
// ======================================================

// UpdateTreatmentNotes edits the free-text notes on one association.
// The price snapshot on the same row stays untouched.
func (h *AppointmentHandler) UpdateTreatmentNotes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	treatmentID, ok := parseID(c, "treatmentId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid treatment id.")
		return
	}

	var req UpdateTreatmentNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid notes payload.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.AppointmentTreatment{}).
		Where("appointment_id = ? AND treatment_id = ?", id, treatmentID).
		Update("notes", req.Notes)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_notes", "Failed to update notes.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "association_not_found", "No such treatment on this appointment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "treatment_notes_updated",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{"treatment_id": treatmentID},
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// DELETE (integrity guard)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, actorID(c)); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.Conflict(c, be.Code, be.Message)
			return
		}
		log.Error().Err(err).Uint("appointment_id", id).Msg("appointment delete failed")
		httperr.Internal(c, "failed_to_delete_appointment", "Failed to delete appointment.")
		return
	}

	c.Status(http.StatusNoContent)
}
