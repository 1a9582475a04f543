package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/germanygsg/medrec/internal/domain/billing"
	"github.com/germanygsg/medrec/internal/dto"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/infra/repository"
)

type DashboardHandler struct {
	reporting *repository.ReportingGormRepository
}

func NewDashboardHandler(reporting *repository.ReportingGormRepository) *DashboardHandler {
	return &DashboardHandler{reporting: reporting}
}

// Stats returns the current-month summary tiles.
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	since := billing.FirstOfMonth(time.Now())

	patients, err := h.reporting.CountPatientsSince(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("patient counter failed")
		httperr.Internal(c, "failed_to_get_stats", "Failed to fetch dashboard stats.")
		return
	}

	appointments, err := h.reporting.CountAppointmentsSince(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("appointment counter failed")
		httperr.Internal(c, "failed_to_get_stats", "Failed to fetch dashboard stats.")
		return
	}

	revenue, err := h.reporting.SumPaidRevenueSince(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("revenue counter failed")
		httperr.Internal(c, "failed_to_get_stats", "Failed to fetch dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, dto.DashboardStats{
		NewPatients:      patients,
		Appointments:     appointments,
		RevenueThisMonth: revenue,
	})
}

// AppointmentsByMonth is the trailing 12-month visit-count rollup.
func (h *DashboardHandler) AppointmentsByMonth(c *gin.Context) {
	since := billing.TrailingYearStart(time.Now())

	rows, err := h.reporting.AppointmentsByMonth(c.Request.Context(), since)
	if err != nil {
		log.Error().Err(err).Msg("appointment rollup failed")
		httperr.Internal(c, "failed_to_get_rollup", "Failed to fetch monthly appointments.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// RevenueByMonth is the trailing 12-month paid-revenue rollup.
func (h *DashboardHandler) RevenueByMonth(c *gin.Context) {
	since := billing.TrailingYearStart(time.Now())

	rows, err := h.reporting.RevenueByMonth(c.Request.Context(), since)
	if err != nil {
		log.Error().Err(err).Msg("revenue rollup failed")
		httperr.Internal(c, "failed_to_get_rollup", "Failed to fetch monthly revenue.")
		return
	}

	c.JSON(http.StatusOK, rows)
}
