package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/issues"
)

// IssueHandler handles issue report endpoints
type IssueHandler struct {
	issueUC issues.IssueUC
}

// NewIssueHandler creates a new issue HTTP handler
func NewIssueHandler(issueUC issues.IssueUC) *IssueHandler {
	return &IssueHandler{issueUC: issueUC}
}

// Report files a new issue
func (h *IssueHandler) Report(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Issues.Report")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.ReportIssueRequest
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	issue, err := h.issueUC.Report(c.Request().Context(), riderID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Issue reported successfully", issue)
}

// List returns the caller's issues
func (h *IssueHandler) List(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Issues.List")

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

	list, err := h.issueUC.List(c.Request().Context(), riderID, models.IssueQuery{
		Status: models.IssueStatus(c.QueryParam("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Issues retrieved successfully", list)
}

// Get returns one issue with its follow-ups
func (h *IssueHandler) Get(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Issues.Get")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	issueID, err := utils.ParamUUID(c, "id", "Issue not found")
	if err != nil {
		return utils.HandleError(c, err)
	}

	issue, err := h.issueUC.Get(c.Request().Context(), riderID, issueID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Issue retrieved successfully", issue)
}

// FollowUp appends a message to an issue
func (h *IssueHandler) FollowUp(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Issues.FollowUp")

	riderID, err := utils.RiderID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	issueID, err := utils.ParamUUID(c, "id", "Issue not found")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.FollowUpRequest
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	msg, err := h.issueUC.FollowUp(c.Request().Context(), riderID, issueID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Follow-up added successfully", msg)
}

// Respond updates an issue from the back office
func (h *IssueHandler) Respond(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Issues.Respond")

	issueID, err := utils.ParamUUID(c, "id", "Issue not found")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.IssueResponse
	if err := utils.BindStrict(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	issue, err := h.issueUC.Respond(c.Request().Context(), issueID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Issue updated successfully", issue)
}
