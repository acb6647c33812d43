package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/auth"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/response"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login exchanges the admin credential pair for a session token. The credential
// check is a placeholder, not real authentication.
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} response.Response{data=loginResponse}
// @Failure 401 {object} response.Response
// @Router /api/v1/admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.authenticator.Authenticate(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		response.Unauthorized(c, "Sai thông tin đăng nhập!")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	tok, exp, err := h.tokens.Issue(p.Username, p.Role)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, loginResponse{Token: tok, ExpiresAt: exp})
}

// ListOrders returns every order, newest first.
// @Summary List orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]orderView}
// @Failure 401 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/v1/admin/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, newOrderViews(orders))
}

type transitionRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

// TransitionOrder moves an order along its lifecycle and answers with the
// re-read order list.
// @Summary Change order status
// @Description Allowed: new->processing, new->cancelled, processing->completed, processing->cancelled.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "order id"
// @Param request body transitionRequest true "target status"
// @Success 200 {object} response.Response{data=[]orderView}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/admin/orders/{id}/status [patch]
func (h *Handler) TransitionOrder(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if _, err := h.orderService.Transition(ctx, c.Param("id"), req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	orders, err := h.orderService.List(ctx)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, newOrderViews(orders))
}
