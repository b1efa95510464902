package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/riders"
)

// RiderHandler handles profile and presence endpoints
type RiderHandler struct {
	riderUC riders.RiderUC
}

// NewRiderHandler creates a new rider HTTP handler
func NewRiderHandler(riderUC riders.RiderUC) *RiderHandler {
	return &RiderHandler{riderUC: riderUC}
}

// GetProfile returns the caller's profile
func (h *RiderHandler) GetProfile(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Riders.GetProfile")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	rider, err := h.riderUC.GetProfile(c.Request().Context(), riderID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", rider)
}

// UpdateProfile edits the caller's profile
func (h *RiderHandler) UpdateProfile(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Riders.UpdateProfile")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.ProfileUpdate
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	rider, err := h.riderUC.UpdateProfile(c.Request().Context(), riderID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", rider)
}

// Stats returns the caller's delivery statistics
func (h *RiderHandler) Stats(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Riders.Stats")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	stats, err := h.riderUC.Stats(c.Request().Context(), riderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved successfully", stats)
}

// SetStatus toggles the caller's presence
func (h *RiderHandler) SetStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Riders.SetStatus")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.StatusUpdate
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	presence, err := h.riderUC.SetOnline(c.Request().Context(), riderID, req.Online)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", presence)
}
