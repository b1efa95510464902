package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/issues"
)

const (
	minMessageLen   = 10
	maxMessageLen   = 500
	minFollowUpLen  = 5
	defaultPageSize = 20
	maxPageSize     = 100
)

// Report files a new issue against one of the rider's tasks
func (uc *IssueUC) Report(ctx context.Context, riderID uuid.UUID, req models.ReportIssueRequest) (*models.Issue, error) {
	if req.OrderID == uuid.Nil {
		return nil, apperror.Validation("Order ID is required")
	}
	if !req.Type.Valid() {
		return nil, apperror.Validation("Invalid issue type")
	}
	if n := utf8.RuneCountInString(req.Message); n < minMessageLen || n > maxMessageLen {
		return nil, apperror.Validation("Message must be between 10 and 500 characters")
	}
	for _, img := range req.Images {
		if !utils.IsHTTPURL(img) {
			return nil, apperror.Validation("Images must be http or https URLs")
		}
	}

	owned, err := uc.issueRepo.TaskBelongsTo(ctx, req.OrderID, riderID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to report issue")
	}
	if !owned {
		return nil, issues.ErrTaskNotFound
	}

	now := uc.now()
	images := pq.StringArray{}
	if len(req.Images) > 0 {
		images = pq.StringArray(req.Images)
	}
	issue := &models.Issue{
		ID:        uuid.New(),
		RiderID:   riderID,
		TaskID:    req.OrderID,
		Type:      req.Type,
		Message:   req.Message,
		Images:    images,
		Status:    models.IssuePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.issueRepo.CreateIssue(ctx, issue); err != nil {
		return nil, apperror.Internal(err, "Failed to report issue")
	}

	logger.InfoCtx(ctx, "Issue reported",
		logger.RiderID(riderID),
		logger.String("issue_id", issue.ID.String()),
		logger.String("type", string(issue.Type)))
	return issue, nil
}

// List returns a page of the rider's issues, optionally filtered by status
func (uc *IssueUC) List(ctx context.Context, riderID uuid.UUID, q models.IssueQuery) (*models.IssueList, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, apperror.Validation("Invalid status filter")
	}
	q.Limit, q.Offset = utils.ClampPage(q.Limit, q.Offset, defaultPageSize, maxPageSize)

	list, total, err := uc.issueRepo.ListIssues(ctx, riderID, q)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load issues")
	}
	return &models.IssueList{
		Issues:     list,
		Pagination: models.NewPagination(total, q.Limit, q.Offset),
	}, nil
}

// Get returns one of the rider's issues with its follow-ups
func (uc *IssueUC) Get(ctx context.Context, riderID, issueID uuid.UUID) (*models.Issue, error) {
	issue, err := uc.owned(ctx, riderID, issueID)
	if err != nil {
		return nil, err
	}
	msgs, err := uc.issueRepo.ListMessages(ctx, issueID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load issue")
	}
	issue.FollowUps = msgs
	return issue, nil
}

// FollowUp appends a message to an open issue
func (uc *IssueUC) FollowUp(ctx context.Context, riderID, issueID uuid.UUID, req models.FollowUpRequest) (*models.IssueMessage, error) {
	if utf8.RuneCountInString(req.Message) < minFollowUpLen {
		return nil, apperror.Validation("Message must be at least 5 characters")
	}
	issue, err := uc.owned(ctx, riderID, issueID)
	if err != nil {
		return nil, err
	}
	if issue.Status == models.IssueClosed {
		return nil, issues.ErrIssueClosed
	}

	msg := &models.IssueMessage{
		ID:        uuid.New(),
		IssueID:   issueID,
		Message:   req.Message,
		CreatedAt: uc.now(),
	}
	if err := uc.issueRepo.AddMessage(ctx, msg); err != nil {
		return nil, passThrough(err, "Failed to add follow-up")
	}
	return msg, nil
}

// Respond records the back office's handling of an issue
func (uc *IssueUC) Respond(ctx context.Context, issueID uuid.UUID, res models.IssueResponse) (*models.Issue, error) {
	if !res.Status.Valid() {
		return nil, apperror.Validation("Invalid issue status")
	}
	if utf8.RuneCountInString(res.AdminResponse) > maxMessageLen {
		return nil, apperror.Validation("Response must be at most 500 characters")
	}

	now := uc.now()
	var resolvedAt *time.Time
	if res.Status == models.IssueResolved {
		resolvedAt = &now
	}
	issue, err := uc.issueRepo.UpdateIssue(ctx, issueID, res, resolvedAt, now)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to update issue")
	}
	if issue == nil {
		return nil, issues.ErrIssueNotFound
	}

	logger.InfoCtx(ctx, "Issue updated",
		logger.String("issue_id", issueID.String()),
		logger.String("status", string(res.Status)))
	return issue, nil
}

func (uc *IssueUC) owned(ctx context.Context, riderID, issueID uuid.UUID) (*models.Issue, error) {
	issue, err := uc.issueRepo.GetIssue(ctx, issueID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load issue")
	}
	if issue == nil || issue.RiderID != riderID {
		return nil, issues.ErrIssueNotFound
	}
	return issue, nil
}

func passThrough(err error, message string) error {
	if apperror.KindOf(err) != apperror.KindInternal {
		return err
	}
	return apperror.Internal(err, message)
}
