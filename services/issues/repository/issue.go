package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/issues"
)

const issueColumns = `id, rider_id, task_id, type, message, images, status,
	admin_response, resolved_at, created_at, updated_at`

// TaskBelongsTo reports whether the task is assigned to the rider
func (r *IssueRepo) TaskBelongsTo(ctx context.Context, taskID, riderID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM delivery_tasks WHERE id = $1 AND rider_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, taskID, riderID); err != nil {
		return false, fmt.Errorf("failed to check task ownership: %w", err)
	}
	return exists, nil
}

// CreateIssue inserts a new issue
func (r *IssueRepo) CreateIssue(ctx context.Context, issue *models.Issue) error {
	query := `
		INSERT INTO issues (id, rider_id, task_id, type, message, images, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		issue.ID, issue.RiderID, issue.TaskID, issue.Type, issue.Message,
		issue.Images, issue.Status, issue.CreatedAt, issue.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert issue: %w", err)
	}
	return nil
}

// GetIssue returns the issue or nil when it does not exist
func (r *IssueRepo) GetIssue(ctx context.Context, issueID uuid.UUID) (*models.Issue, error) {
	var issue models.Issue
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = $1`
	if err := r.db.GetContext(ctx, &issue, query, issueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return &issue, nil
}

// ListIssues returns a page of the rider's issues, newest first, and the
// total matching the filter
func (r *IssueRepo) ListIssues(ctx context.Context, riderID uuid.UUID, q models.IssueQuery) ([]models.Issue, int, error) {
	where := `WHERE rider_id = $1 AND ($2::text = '' OR status = $2::text)`

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM issues `+where, riderID, q.Status); err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	list := []models.Issue{}
	query := `SELECT ` + issueColumns + ` FROM issues ` + where + `
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	if err := r.db.SelectContext(ctx, &list, query, riderID, q.Status, q.Limit, q.Offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}
	return list, total, nil
}

// ListMessages returns the follow-ups of an issue in the order they were added
func (r *IssueRepo) ListMessages(ctx context.Context, issueID uuid.UUID) ([]models.IssueMessage, error) {
	list := []models.IssueMessage{}
	query := `SELECT id, issue_id, message, created_at FROM issue_messages
		WHERE issue_id = $1
		ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &list, query, issueID); err != nil {
		return nil, fmt.Errorf("failed to list issue messages: %w", err)
	}
	return list, nil
}

// AddMessage appends a follow-up. The insert only happens while the issue is
// not closed.
func (r *IssueRepo) AddMessage(ctx context.Context, msg *models.IssueMessage) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO issue_messages (id, issue_id, message, created_at)
			SELECT $1, $2, $3, $4
			WHERE EXISTS (SELECT 1 FROM issues WHERE id = $2 AND status <> 'closed')`,
			msg.ID, msg.IssueID, msg.Message, msg.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert issue message: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to insert issue message: %w", err)
		}
		if n == 0 {
			return issues.ErrIssueClosed
		}

		if _, err := tx.ExecContext(ctx, `UPDATE issues SET updated_at = $1 WHERE id = $2`, msg.CreatedAt, msg.IssueID); err != nil {
			return fmt.Errorf("failed to touch issue: %w", err)
		}
		return nil
	})
}

// UpdateIssue applies a back-office response and returns the issue, or nil
// when it does not exist. An empty response keeps the previous one and a nil
// resolvedAt keeps the previous resolution time.
func (r *IssueRepo) UpdateIssue(ctx context.Context, issueID uuid.UUID, res models.IssueResponse, resolvedAt *time.Time, at time.Time) (*models.Issue, error) {
	var issue models.Issue
	query := `
		UPDATE issues SET
			status = $1,
			admin_response = COALESCE(NULLIF($2, ''), admin_response),
			resolved_at = COALESCE($3, resolved_at),
			updated_at = $4
		WHERE id = $5
		RETURNING ` + issueColumns
	if err := r.db.GetContext(ctx, &issue, query, res.Status, res.AdminResponse, resolvedAt, at, issueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}
	return &issue, nil
}
