package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/response"
)

// ListSims returns available listings filtered by q.
// @Summary List available SIMs
// @Description Returns available listings whose number contains q once dots are removed from both.
// @Tags catalog
// @Produce json
// @Param q query string false "phone number fragment, e.g. 888 or 0912.345"
// @Success 200 {object} response.Response{data=[]simView}
// @Failure 503 {object} response.Response
// @Router /api/v1/sims [get]
func (h *Handler) ListSims(c *gin.Context) {
	sims, err := h.catalogService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, newSimViews(sims))
}
