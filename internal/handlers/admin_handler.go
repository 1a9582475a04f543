package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/germanygsg/medrec/internal/httperr"
	ucAdmin "github.com/germanygsg/medrec/internal/usecase/admin"
)

type AdminHandler struct {
	wipeUC *ucAdmin.WipeData
}

func NewAdminHandler(wipeUC *ucAdmin.WipeData) *AdminHandler {
	return &AdminHandler{wipeUC: wipeUC}
}

// Wipe clears all clinical data. Meant for test/reset environments.
func (h *AdminHandler) Wipe(c *gin.Context) {
	if err := h.wipeUC.Execute(c.Request.Context(), actorID(c)); err != nil {
		log.Error().Err(err).Msg("data wipe failed")
		httperr.Internal(c, "failed_to_wipe_data", "Failed to wipe data.")
		return
	}

	c.Status(http.StatusNoContent)
}
