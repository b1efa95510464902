package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/payouts"
)

// PayoutHandler handles wallet and earnings endpoints
type PayoutHandler struct {
	payoutUC payouts.PayoutUC
}

// NewPayoutHandler creates a new payout HTTP handler
func NewPayoutHandler(payoutUC payouts.PayoutUC) *PayoutHandler {
	return &PayoutHandler{payoutUC: payoutUC}
}

// RequestPayout withdraws from the caller's wallet
func (h *PayoutHandler) RequestPayout(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payouts.RequestPayout")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.PayoutRequest
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	payout, err := h.payoutUC.RequestPayout(c.Request().Context(), riderID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payout request submitted", payout)
}

// PayoutHistory lists the caller's payouts
func (h *PayoutHandler) PayoutHistory(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payouts.PayoutHistory")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	limit, err := utils.QueryInt(c, "limit", 20)
	if err != nil {
		return utils.HandleError(c, err)
	}
	offset, err := utils.QueryInt(c, "offset", 0)
	if err != nil {
		return utils.HandleError(c, err)
	}

	history, err := h.payoutUC.PayoutHistory(c.Request().Context(), riderID, limit, offset)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payout history retrieved successfully", history)
}

// EarningsToday returns today's ledger rows and the wallet balance
func (h *PayoutHandler) EarningsToday(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payouts.EarningsToday")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	report, err := h.payoutUC.EarningsToday(c.Request().Context(), riderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Today's earnings retrieved successfully", report)
}

// EarningsHistory returns ledger rows between ?from and ?to
func (h *PayoutHandler) EarningsHistory(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payouts.EarningsHistory")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	report, err := h.payoutUC.EarningsHistory(c.Request().Context(), riderID, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Earnings history retrieved successfully", report)
}

// CompletePayout is called by the back office once funds have been sent
func (h *PayoutHandler) CompletePayout(c echo.Context) error {
	return h.resolve(c, "Payouts.CompletePayout", "Payout completed", h.payoutUC.CompletePayout)
}

// FailPayout is called by the back office when a transfer bounces
func (h *PayoutHandler) FailPayout(c echo.Context) error {
	return h.resolve(c, "Payouts.FailPayout", "Payout marked as failed", h.payoutUC.FailPayout)
}

func (h *PayoutHandler) resolve(c echo.Context, name, message string, fn func(context.Context, uuid.UUID, models.PayoutResolution) (*models.Payout, error)) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	payoutID, err := utils.ParamUUID(c, "id", payouts.ErrPayoutNotFound.Message)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var res models.PayoutResolution
	if err := utils.BindStrict(c, &res); err != nil {
		return utils.HandleError(c, err)
	}

	payout, err := fn(c.Request().Context(), payoutID, res)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, payout)
}
