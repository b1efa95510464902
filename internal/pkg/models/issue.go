package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// IssueType classifies a rider exception report
type IssueType string

const (
	IssueWrongAddress         IssueType = "wrong_address"
	IssueCustomerNotAvailable IssueType = "customer_not_available"
	IssueDamagedPackage       IssueType = "damaged_package"
	IssueWrongItem            IssueType = "wrong_item"
	IssuePaymentIssue         IssueType = "payment_issue"
	IssueOther                IssueType = "other"
)

// Valid reports whether t is a supported issue type
func (t IssueType) Valid() bool {
	switch t {
	case IssueWrongAddress, IssueCustomerNotAvailable, IssueDamagedPackage,
		IssueWrongItem, IssuePaymentIssue, IssueOther:
		return true
	}
	return false
}

// IssueStatus is the back-office handling state
type IssueStatus string

const (
	IssuePending       IssueStatus = "pending"
	IssueInvestigating IssueStatus = "investigating"
	IssueResolved      IssueStatus = "resolved"
	IssueClosed        IssueStatus = "closed"
)

// Valid reports whether s is a known issue status
func (s IssueStatus) Valid() bool {
	switch s {
	case IssuePending, IssueInvestigating, IssueResolved, IssueClosed:
		return true
	}
	return false
}

// Issue is a rider-filed report tied to a task
type Issue struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	RiderID       uuid.UUID      `json:"riderId" db:"rider_id"`
	TaskID        uuid.UUID      `json:"orderId" db:"task_id"`
	Type          IssueType      `json:"type" db:"type"`
	Message       string         `json:"message" db:"message"`
	Images        pq.StringArray `json:"images" db:"images"`
	Status        IssueStatus    `json:"status" db:"status"`
	AdminResponse *string        `json:"adminResponse,omitempty" db:"admin_response"`
	ResolvedAt    *time.Time     `json:"resolvedAt,omitempty" db:"resolved_at"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
	FollowUps     []IssueMessage `json:"followUps,omitempty" db:"-"`
}

// IssueMessage is an append-only follow-up on an issue
type IssueMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	IssueID   uuid.UUID `json:"issueId" db:"issue_id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReportIssueRequest is the body of a new issue
type ReportIssueRequest struct {
	OrderID uuid.UUID `json:"orderId"`
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
	Images  []string  `json:"images,omitempty"`
}

// FollowUpRequest is the body of an issue follow-up
type FollowUpRequest struct {
	Message string `json:"message"`
}

// IssueResponse is sent by the back office to update an issue
type IssueResponse struct {
	Status        IssueStatus `json:"status"`
	AdminResponse string      `json:"adminResponse,omitempty"`
}

// IssueQuery filters a rider's issues
type IssueQuery struct {
	Status IssueStatus
	Limit  int
	Offset int
}

// IssueList is a page of issues
type IssueList struct {
	Issues     []Issue    `json:"issues"`
	Pagination Pagination `json:"pagination"`
}
