package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/deliveries"
)

const orderNotFound = "Order not found"

// DeliveryHandler handles rider task endpoints
type DeliveryHandler struct {
	deliveryUC    deliveries.DeliveryUC
	maxProofBytes int64
}

// NewDeliveryHandler creates a new delivery HTTP handler
func NewDeliveryHandler(deliveryUC deliveries.DeliveryUC, maxProofBytes int64) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC:    deliveryUC,
		maxProofBytes: maxProofBytes,
	}
}

// ListTasks returns the rider's open tasks, or those in ?status
func (h *DeliveryHandler) ListTasks(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.ListTasks")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	tasks, err := h.deliveryUC.ListTasks(c.Request().Context(), riderID, c.QueryParam("status"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", tasks)
}

// History returns a page of past tasks. ?status is a pipe-separated list.
func (h *DeliveryHandler) History(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.History")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	query := models.HistoryQuery{}
	if raw := c.QueryParam("status"); raw != "" {
		for _, s := range strings.Split(raw, "|") {
			if s = strings.TrimSpace(s); s != "" {
				query.Statuses = append(query.Statuses, models.TaskStatus(s))
			}
		}
	}
	if query.Limit, err = utils.QueryInt(c, "limit", 50); err != nil {
		return utils.HandleError(c, err)
	}
	if query.Offset, err = utils.QueryInt(c, "offset", 0); err != nil {
		return utils.HandleError(c, err)
	}

	history, err := h.deliveryUC.History(c.Request().Context(), riderID, query)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order history retrieved successfully", history)
}

// GetTask returns a single task
func (h *DeliveryHandler) GetTask(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.GetTask")

	riderID, taskID, err := h.taskParams(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	task, err := h.deliveryUC.GetTask(c.Request().Context(), riderID, taskID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", task)
}

// Pickup confirms collection of the parcel
func (h *DeliveryHandler) Pickup(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.Pickup")

	riderID, taskID, err := h.taskParams(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "task.id", taskID.String())

	var req models.PickupRequest
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	task, err := h.deliveryUC.Pickup(c.Request().Context(), riderID, taskID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order picked up successfully", task)
}

// StartDelivery marks the task out for delivery
func (h *DeliveryHandler) StartDelivery(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.StartDelivery")

	riderID, taskID, err := h.taskParams(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "task.id", taskID.String())

	resp, err := h.deliveryUC.StartDelivery(c.Request().Context(), riderID, taskID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Delivery started", resp)
}

// Deliver completes the task
func (h *DeliveryHandler) Deliver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.Deliver")

	riderID, taskID, err := h.taskParams(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "task.id", taskID.String())

	var req models.DeliverRequest
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	task, err := h.deliveryUC.Deliver(c.Request().Context(), riderID, taskID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order delivered successfully", task)
}

// Cancel abandons the task
func (h *DeliveryHandler) Cancel(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.Cancel")

	riderID, taskID, err := h.taskParams(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	nrpkg.AddTransactionAttribute(txn, "task.id", taskID.String())

	var req models.CancelRequest
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	task, err := h.deliveryUC.Cancel(c.Request().Context(), riderID, taskID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order cancelled successfully", task)
}

// UploadProof accepts a multipart "photo" and stores it
func (h *DeliveryHandler) UploadProof(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.UploadProof")

	riderID, taskID, err := h.taskParams(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.HandleError(c, apperror.Validation("photo is required"))
	}
	if h.maxProofBytes > 0 && fileHeader.Size > h.maxProofBytes {
		return utils.HandleError(c, apperror.Validation("photo is too large"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.HandleError(c, apperror.Wrap(apperror.KindValidation, err, "photo could not be read"))
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return utils.HandleError(c, apperror.Wrap(apperror.KindValidation, err, "photo could not be read"))
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(body)
	}

	resp, err := h.deliveryUC.UploadProof(c.Request().Context(), riderID, taskID, models.ProofUpload{
		ContentType: contentType,
		Size:        int64(len(body)),
		Body:        body,
	})
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Proof of delivery uploaded", resp)
}

// CODSummary reports the rider's cash exposure
func (h *DeliveryHandler) CODSummary(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.CODSummary")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	summary, err := h.deliveryUC.CODSummary(c.Request().Context(), riderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "COD summary retrieved successfully", summary)
}

// UpdateSettlement changes the settlement flag of a delivered cash order
func (h *DeliveryHandler) UpdateSettlement(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Deliveries.UpdateSettlement")

	riderID, taskID, err := h.taskParams(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.SettlementRequest
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	task, err := h.deliveryUC.UpdateSettlement(c.Request().Context(), riderID, taskID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settlement status updated", task)
}

func (h *DeliveryHandler) taskParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	riderID, err := utils.RiderID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	taskID, err := utils.ParamUUID(c, "id", orderNotFound)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return riderID, taskID, nil
}
