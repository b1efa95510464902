package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/services/payouts"
	httpHandler "github.com/piresc/bikeparts/services/payouts/handler/http"
)

// Handler combines all handlers for the payouts service
type Handler struct {
	payoutHTTP *httpHandler.PayoutHandler
}

// NewHandler creates a new combined handler
func NewHandler(payoutUC payouts.PayoutUC) *Handler {
	return &Handler{payoutHTTP: httpHandler.NewPayoutHandler(payoutUC)}
}

// RegisterRoutes registers wallet routes on rider and payout resolution on admin
func (h *Handler) RegisterRoutes(rider *echo.Group, admin *echo.Group) {
	rider.POST("/payouts/request", h.payoutHTTP.RequestPayout)
	rider.GET("/payouts/history", h.payoutHTTP.PayoutHistory)
	rider.GET("/earnings/today", h.payoutHTTP.EarningsToday)
	rider.GET("/earnings/history", h.payoutHTTP.EarningsHistory)

	admin.POST("/payouts/:id/complete", h.payoutHTTP.CompletePayout)
	admin.POST("/payouts/:id/fail", h.payoutHTTP.FailPayout)
}
