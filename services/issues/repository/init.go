package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// IssueRepo implements issues.IssueRepo on PostgreSQL
type IssueRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewIssueRepository creates a new issue repository
func NewIssueRepository(cfg *models.Config, db *sqlx.DB) *IssueRepo {
	return &IssueRepo{
		cfg: cfg,
		db:  db,
	}
}
