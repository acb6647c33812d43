package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/auth"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/service"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/money"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/response"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/token"
)

// Scorer is the feng shui facade. It has no error path.
type Scorer interface {
	Analyze(ctx context.Context, phoneNumber, birthYear, gender string) model.ScoringOutcome
}

// Handler serves the storefront, scoring and admin APIs.
type Handler struct {
	catalogService service.CatalogService
	orderService   service.OrderService
	scorer         Scorer
	authenticator  auth.Authenticator
	tokens         *token.Manager
}

func New(catalogService service.CatalogService, orderService service.OrderService, scorer Scorer, authenticator auth.Authenticator, tokens *token.Manager) *Handler {
	return &Handler{
		catalogService: catalogService,
		orderService:   orderService,
		scorer:         scorer,
		authenticator:  authenticator,
		tokens:         tokens,
	}
}

// Health reports liveness.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

type simView struct {
	*model.Sim
	PriceDisplay string `json:"price_display"`
}

func newSimViews(sims []*model.Sim) []simView {
	out := make([]simView, len(sims))
	for i, s := range sims {
		out[i] = simView{Sim: s, PriceDisplay: money.FormatVND(s.Price)}
	}
	return out
}

type orderView struct {
	*model.Order
	PriceDisplay string              `json:"price_display"`
	NextStatuses []model.OrderStatus `json:"next_statuses"`
}

func newOrderView(o *model.Order) orderView {
	next := model.NextStatuses(o.Status)
	if next == nil {
		next = []model.OrderStatus{}
	}
	return orderView{Order: o, PriceDisplay: money.FormatVND(o.Price), NextStatuses: next}
}

func newOrderViews(orders []*model.Order) []orderView {
	out := make([]orderView, len(orders))
	for i, o := range orders {
		out[i] = newOrderView(o)
	}
	return out
}

// writeServiceError maps service errors onto the response envelope.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOrder):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		response.Conflict(c, err.Error())
	case service.IsPersistence(err):
		_ = c.Error(err)
		response.ServiceUnavailable(c, "Lỗi kết nối dữ liệu. Vui lòng thử lại.")
	default:
		response.InternalError(c, err)
	}
}
