package issues

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bikeparts/services/issues IssueRepo

// IssueRepo defines data access for issues and their follow-ups
type IssueRepo interface {
	TaskBelongsTo(ctx context.Context, taskID, riderID uuid.UUID) (bool, error)
	CreateIssue(ctx context.Context, issue *models.Issue) error
	GetIssue(ctx context.Context, issueID uuid.UUID) (*models.Issue, error)
	ListIssues(ctx context.Context, riderID uuid.UUID, q models.IssueQuery) ([]models.Issue, int, error)
	ListMessages(ctx context.Context, issueID uuid.UUID) ([]models.IssueMessage, error)
	AddMessage(ctx context.Context, msg *models.IssueMessage) error
	UpdateIssue(ctx context.Context, issueID uuid.UUID, res models.IssueResponse, resolvedAt *time.Time, at time.Time) (*models.Issue, error)
}
