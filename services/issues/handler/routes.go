package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/services/issues"
	httpHandler "github.com/piresc/bikeparts/services/issues/handler/http"
)

// Handler combines all handlers for the issues service
type Handler struct {
	issueHTTP *httpHandler.IssueHandler
}

// NewHandler creates a new combined handler
func NewHandler(issueUC issues.IssueUC) *Handler {
	return &Handler{issueHTTP: httpHandler.NewIssueHandler(issueUC)}
}

// RegisterRoutes registers issue reporting on rider and handling on admin
func (h *Handler) RegisterRoutes(rider *echo.Group, admin *echo.Group) {
	rider.POST("/issues", h.issueHTTP.Report)
	rider.GET("/issues", h.issueHTTP.List)
	rider.GET("/issues/:id", h.issueHTTP.Get)
	rider.POST("/issues/:id/follow-up", h.issueHTTP.FollowUp)

	admin.PUT("/issues/:id", h.issueHTTP.Respond)
}
