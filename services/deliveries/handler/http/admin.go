package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/deliveries"
)

// AssignmentHandler handles back-office dispatch
type AssignmentHandler struct {
	deliveryUC deliveries.DeliveryUC
}

// NewAssignmentHandler creates a new assignment HTTP handler
func NewAssignmentHandler(deliveryUC deliveries.DeliveryUC) *AssignmentHandler {
	return &AssignmentHandler{deliveryUC: deliveryUC}
}

// AssignOrder binds a sales order to a rider. The response is the only place
// the pickup and delivery codes are returned.
func (h *AssignmentHandler) AssignOrder(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.AssignOrder")

	var req models.AssignOrderRequest
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	task, err := h.deliveryUC.AssignOrder(c.Request().Context(), req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Order assignment rejected",
			logger.String("order_id", req.OrderID.String()),
			logger.String("rider_id", req.RiderID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Order assigned successfully", task)
}
