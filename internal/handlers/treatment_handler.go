package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/audit"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
)

type TreatmentHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewTreatmentHandler(db *gorm.DB, auditSink audit.Sink) *TreatmentHandler {
	return &TreatmentHandler{db: db, audit: auditSink}
}

// --------- Requests ---------

type CreateTreatmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
}

type UpdateTreatmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if price.IsNegative() || price.IsZero() {
		return decimal.Zero, errors.New("price must be positive")
	}
	return price.Round(2), nil
}

// --------- Handlers ---------

func (h *TreatmentHandler) Create(c *gin.Context) {
	var req CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid treatment data.")
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		httperr.BadRequest(c, "invalid_price", "Price must be a positive decimal.")
		return
	}

	treatment := models.Treatment{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       price,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&treatment).Error; err != nil {
		log.Error().Err(err).Msg("treatment insert failed")
		httperr.Internal(c, "failed_to_create_treatment", "Failed to create treatment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "treatment_created",
		Entity:   "treatment",
		EntityID: &treatment.ID,
	})

	c.JSON(http.StatusCreated, treatment)
}

func (h *TreatmentHandler) List(c *gin.Context) {
	var treatments []models.Treatment
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&treatments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_treatments", "Failed to fetch treatments.")
		return
	}

	c.JSON(http.StatusOK, treatments)
}

func (h *TreatmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid treatment id.")
		return
	}

	var treatment models.Treatment
	if err := h.db.WithContext(c.Request.Context()).First(&treatment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_treatment", "Failed to fetch treatment.")
		return
	}

	c.JSON(http.StatusOK, treatment)
}

// Update edits the catalog entry only. Associations made before the
// change keep their price snapshots, so past invoices are unaffected.
func (h *TreatmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid treatment id.")
		return
	}

	var treatment models.Treatment
	if err := h.db.WithContext(c.Request.Context()).First(&treatment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_treatment", "Failed to fetch treatment.")
		return
	}

	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid treatment data.")
		return
	}

	if req.Name != nil {
		treatment.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		treatment.Description = *req.Description
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			httperr.BadRequest(c, "invalid_price", "Price must be a positive decimal.")
			return
		}
		treatment.Price = price
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&treatment).Error; err != nil {
		log.Error().Err(err).Uint("treatment_id", id).Msg("treatment update failed")
		httperr.Internal(c, "failed_to_update_treatment", "Failed to update treatment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "treatment_updated",
		Entity:   "treatment",
		EntityID: &treatment.ID,
	})

	c.JSON(http.StatusOK, treatment)
}

func (h *TreatmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid treatment id.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Delete(&models.Treatment{}, id).Error; err != nil {

		log.Error().Err(err).Uint("treatment_id", id).Msg("treatment delete failed")
		httperr.Internal(c, "failed_to_delete_treatment", "Failed to delete treatment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "treatment_deleted",
		Entity:   "treatment",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
