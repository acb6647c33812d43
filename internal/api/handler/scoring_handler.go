package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/response"
)

const defaultGender = "Nam"

type analyzeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	BirthYear   string `json:"birth_year" binding:"required,numeric,len=4"`
	Gender      string `json:"gender" binding:"omitempty,oneof=Nam Nữ"`
}

// Analyze scores a number for its owner.
// @Summary Feng shui scoring for a phone number
// @Description Always answers 200; source tells whether the result is live, demo or degraded.
// @Tags feng-shui
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "number and owner"
// @Success 200 {object} response.Response{data=model.ScoringOutcome}
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /api/v1/feng-shui/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Gender == "" {
		req.Gender = defaultGender
	}
	response.Success(c, h.scorer.Analyze(c.Request.Context(), req.PhoneNumber, req.BirthYear, req.Gender))
}
