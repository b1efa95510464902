package issues

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bikeparts/services/issues IssueUC

// IssueUC covers rider issue reports and their back-office handling
type IssueUC interface {
	Report(ctx context.Context, riderID uuid.UUID, req models.ReportIssueRequest) (*models.Issue, error)
	List(ctx context.Context, riderID uuid.UUID, q models.IssueQuery) (*models.IssueList, error)
	Get(ctx context.Context, riderID, issueID uuid.UUID) (*models.Issue, error)
	FollowUp(ctx context.Context, riderID, issueID uuid.UUID, req models.FollowUpRequest) (*models.IssueMessage, error)
	Respond(ctx context.Context, issueID uuid.UUID, res models.IssueResponse) (*models.Issue, error)
}
