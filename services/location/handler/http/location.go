package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/location"
)

// LocationHandler handles rider position endpoints
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// UpdateLocation records a GPS sample for the caller
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.UpdateLocation")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.LocationUpdate
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	entry, err := h.locationUC.UpdateLocation(c.Request().Context(), riderID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", entry)
}

// History returns the caller's recent samples
func (h *LocationHandler) History(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.History")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	limit, err := utils.QueryInt(c, "limit", 50)
	if err != nil {
		return utils.HandleError(c, err)
	}

	logs, err := h.locationUC.History(c.Request().Context(), riderID, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location history retrieved successfully", logs)
}

// LiveLocations lists every active rider's last position
func (h *LocationHandler) LiveLocations(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.LiveLocations")

	riders, err := h.locationUC.LiveLocations(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rider locations retrieved successfully", riders)
}

// NearbyRiders searches around ?lat and ?lng within ?radius kilometres
func (h *LocationHandler) NearbyRiders(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.NearbyRiders")

	var (
		q   models.NearbyQuery
		err error
	)
	if q.Lat, err = utils.QueryFloat(c, "lat", 0, true); err != nil {
		return utils.HandleError(c, err)
	}
	if q.Lng, err = utils.QueryFloat(c, "lng", 0, true); err != nil {
		return utils.HandleError(c, err)
	}
	if q.RadiusKm, err = utils.QueryFloat(c, "radius", 0, false); err != nil {
		return utils.HandleError(c, err)
	}

	riders, err := h.locationUC.NearbyRiders(c.Request().Context(), q)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby riders retrieved successfully", riders)
}
