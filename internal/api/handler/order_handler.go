package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/response"
)

type createOrderRequest struct {
	SimID         string `json:"sim_id" binding:"required"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	Price         int64  `json:"price" binding:"min=0"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required,vnphone"`
	Address       string `json:"address"`
}

// CreateOrder records a new order in status new.
// @Summary Place an order for a listing
// @Description Phone number and price are stored as given and never re-read from the catalog.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body createOrderRequest true "order"
// @Success 201 {object} response.Response{data=orderView}
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response "store unavailable, retry"
// @Router /api/v1/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	order, err := h.orderService.Create(c.Request.Context(), model.OrderDraft{
		SimID:         req.SimID,
		PhoneNumber:   req.PhoneNumber,
		Price:         req.Price,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, newOrderView(order))
}
