package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/httpresp"
	"github.com/germanygsg/medrec/internal/infra/repository"
)

// ExportHandler serves the one read the external spreadsheet tool
// consumes. File formatting happens outside this service.
type ExportHandler struct {
	reporting *repository.ReportingGormRepository
}

func NewExportHandler(reporting *repository.ReportingGormRepository) *ExportHandler {
	return &ExportHandler{reporting: reporting}
}

func (h *ExportHandler) Invoices(c *gin.Context) {
	rows, err := h.reporting.ListInvoicesForExport(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("invoice export read failed")
		httperr.Internal(c, "failed_to_export_invoices", "Failed to export invoices.")
		return
	}

	httpresp.List(c, rows)
}
