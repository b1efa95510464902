package usecase

import (
	"time"

	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/issues"
)

// IssueUC implements the issue use case interface
type IssueUC struct {
	cfg       *models.Config
	issueRepo issues.IssueRepo
	now       func() time.Time
}

// NewIssueUC creates a new issue use case
func NewIssueUC(cfg *models.Config, issueRepo issues.IssueRepo) *IssueUC {
	return &IssueUC{
		cfg:       cfg,
		issueRepo: issueRepo,
		now:       models.Now,
	}
}
