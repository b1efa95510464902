package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/deliveries"
	httpHandler "github.com/piresc/bikeparts/services/deliveries/handler/http"
)

// Handler combines all handlers for the deliveries service
type Handler struct {
	deliveryHTTP   *httpHandler.DeliveryHandler
	assignmentHTTP *httpHandler.AssignmentHandler
}

// NewHandler creates a new combined handler
func NewHandler(deliveryUC deliveries.DeliveryUC, cfg *models.Config) *Handler {
	return &Handler{
		deliveryHTTP:   httpHandler.NewDeliveryHandler(deliveryUC, cfg.Storage.MaxProofBytes),
		assignmentHTTP: httpHandler.NewAssignmentHandler(deliveryUC),
	}
}

// RegisterRoutes registers rider task routes on rider and dispatch routes on admin
func (h *Handler) RegisterRoutes(rider *echo.Group, admin *echo.Group) {
	orders := rider.Group("/orders")
	orders.GET("", h.deliveryHTTP.ListTasks)
	orders.GET("/assigned", h.deliveryHTTP.ListTasks)
	orders.GET("/history", h.deliveryHTTP.History)
	orders.GET("/cod-summary", h.deliveryHTTP.CODSummary)
	orders.GET("/:id", h.deliveryHTTP.GetTask)
	orders.POST("/:id/pickup", h.deliveryHTTP.Pickup)
	orders.POST("/:id/start", h.deliveryHTTP.StartDelivery)
	orders.POST("/:id/deliver", h.deliveryHTTP.Deliver)
	orders.POST("/:id/cancel", h.deliveryHTTP.Cancel)
	orders.POST("/:id/proof", h.deliveryHTTP.UploadProof)
	orders.PUT("/:id/settlement", h.deliveryHTTP.UpdateSettlement)
	rider.GET("/cod/summary", h.deliveryHTTP.CODSummary)

	admin.POST("/assignments", h.assignmentHTTP.AssignOrder)
}
