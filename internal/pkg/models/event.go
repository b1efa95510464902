package models

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is a domain event recorded in the same transaction as the
// change it describes and relayed to NATS afterwards
type OutboxEvent struct {
	ID          uuid.UUID  `db:"id"`
	Subject     string     `db:"subject"`
	AggregateID string     `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Attempts    int        `db:"attempts"`
	LastError   *string    `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
	PublishedAt *time.Time `db:"published_at"`
}

// TaskEvent is the payload of task.* subjects
type TaskEvent struct {
	TaskID      string     `json:"taskId"`
	OrderNumber string     `json:"orderId"`
	RiderID     string     `json:"riderId"`
	Status      TaskStatus `json:"status"`
	CODAmount   int64      `json:"codAmount,omitempty"`
	Fee         int64      `json:"fee,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// PayoutEvent is the payload of payout.* subjects
type PayoutEvent struct {
	PayoutID   string       `json:"payoutId"`
	RiderID    string       `json:"riderId"`
	Amount     int64        `json:"amount"`
	Method     PayoutMethod `json:"payoutMethod"`
	Status     PayoutStatus `json:"status"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// RiderStatusEvent is broadcast when a rider goes on or off line
type RiderStatusEvent struct {
	RiderID   string    `json:"riderId"`
	Online    bool      `json:"online"`
	Timestamp time.Time `json:"timestamp"`
}
