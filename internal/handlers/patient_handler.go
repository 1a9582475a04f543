package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/audit"
	"github.com/germanygsg/medrec/internal/dto"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
	"github.com/germanygsg/medrec/internal/sequence"
	ucPatient "github.com/germanygsg/medrec/internal/usecase/patient"
	"github.com/germanygsg/medrec/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	db       *gorm.DB
	seq      *sequence.Generator
	deleteUC *ucPatient.DeletePatient
	audit    audit.Sink
}

func NewPatientHandler(
	db *gorm.DB,
	seq *sequence.Generator,
	deleteUC *ucPatient.DeletePatient,
	auditSink audit.Sink,
) *PatientHandler {
	return &PatientHandler{
		db:       db,
		seq:      seq,
		deleteUC: deleteUC,
		audit:    auditSink,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePatientRequest struct {
	Name             string `json:"name" binding:"required"`
	DateOfBirth      string `json:"date_of_birth" binding:"required"`
	Address          string `json:"address"`
	InitialDiagnosis string `json:"initial_diagnosis"`
}

type UpdatePatientRequest struct {
	Name             *string `json:"name,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Address          *string `json:"address,omitempty"`
	InitialDiagnosis *string `json:"initial_diagnosis,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid patient data.")
		return
	}

	dob, err := validators.ParseDateOfBirth(req.DateOfBirth, time.Now())
	if err != nil {
		httperr.BadRequest(c, "invalid_date_of_birth", "Date of birth must be a past YYYY-MM-DD date.")
		return
	}

	recordNumber, err := h.seq.Next(c.Request.Context(), sequence.PrefixPatient)
	if err != nil {
		log.Error().Err(err).Msg("record number generation failed")
		httperr.Internal(c, "failed_to_create_patient", "Failed to create patient.")
		return
	}

	patient := models.Patient{
		RecordNumber:     recordNumber,
		Name:             strings.TrimSpace(req.Name),
		DateOfBirth:      dob,
		Address:          req.Address,
		InitialDiagnosis: req.InitialDiagnosis,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&patient).Error; err != nil {
		log.Error().Err(err).Str("record_number", recordNumber).Msg("patient insert failed")
		httperr.Internal(c, "failed_to_create_patient", "Failed to create patient.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "patient_created",
		Entity:   "patient",
		EntityID: &patient.ID,
	})

	c.JSON(http.StatusCreated, patient)
}

// ======================================================
// LIST
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	q := h.db.WithContext(c.Request.Context()).Model(&models.Patient{})

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(record_number) LIKE ?",
			like, like,
		)
	}

	var patients []models.Patient
	if err := q.
		Order("created_at DESC").
		Find(&patients).Error; err != nil {

		log.Error().Err(err).Msg("patient list failed")
		httperr.Internal(c, "failed_to_list_patients", "Failed to fetch patients.")
		return
	}

	c.JSON(http.StatusOK, patients)
}

// ======================================================
// GET
// ======================================================

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid patient id.")
		return
	}

	var patient models.Patient
	if err := h.db.WithContext(c.Request.Context()).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "patient_not_found", "Patient not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", "Failed to fetch patient.")
		return
	}

	c.JSON(http.StatusOK, dto.PatientDetail{
		Patient: patient,
		Age:     validators.Age(patient.DateOfBirth, time.Now()),
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid patient id.")
		return
	}

	var patient models.Patient
	if err := h.db.WithContext(c.Request.Context()).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "patient_not_found", "Patient not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", "Failed to fetch patient.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid patient data.")
		return
	}

	if req.Name != nil {
		patient.Name = strings.TrimSpace(*req.Name)
	}
	if req.DateOfBirth != nil {
		dob, err := validators.ParseDateOfBirth(*req.DateOfBirth, time.Now())
		if err != nil {
			httperr.BadRequest(c, "invalid_date_of_birth", "Date of birth must be a past YYYY-MM-DD date.")
			return
		}
		patient.DateOfBirth = dob
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.InitialDiagnosis != nil {
		patient.InitialDiagnosis = *req.InitialDiagnosis
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&patient).Error; err != nil {
		log.Error().Err(err).Uint("patient_id", id).Msg("patient update failed")
		httperr.Internal(c, "failed_to_update_patient", "Failed to update patient.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "patient_updated",
		Entity:   "patient",
		EntityID: &patient.ID,
	})

	c.JSON(http.StatusOK, patient)
}

// ======================================================
// DELETE (integrity guard)
// ======================================================

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid patient id.")
		return
	}

	var patient models.Patient
	if err := h.db.WithContext(c.Request.Context()).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "patient_not_found", "Patient not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", "Failed to fetch patient.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, actorID(c)); err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.Conflict(c, be.Code, be.Message)
			return
		}
		log.Error().Err(err).Uint("patient_id", id).Msg("patient delete failed")
		httperr.Internal(c, "failed_to_delete_patient", "Failed to delete patient. Please ensure all related appointments and invoices are deleted first.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// APPOINTMENT HISTORY
// ======================================================

func (h *PatientHandler) ListAppointments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid patient id.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.WithContext(c.Request.Context()).
		Where("patient_id = ?", id).
		Order("appointment_date DESC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Failed to fetch appointments.")
		return
	}

	c.JSON(http.StatusOK, appointments)
}
