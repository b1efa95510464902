package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TaskStatus is the state of a delivery task
type TaskStatus string

const (
	TaskStatusAssigned       TaskStatus = "assigned"
	TaskStatusPickedUp       TaskStatus = "picked_up"
	TaskStatusOutForDelivery TaskStatus = "out_for_delivery"
	TaskStatusDelivered      TaskStatus = "delivered"
	TaskStatusCancelled      TaskStatus = "cancelled"
)

// OpenTaskStatuses are the non-terminal statuses
var OpenTaskStatuses = []TaskStatus{
	TaskStatusAssigned,
	TaskStatusPickedUp,
	TaskStatusOutForDelivery,
}

// DefaultHistoryStatuses are used when a history query names no status
var DefaultHistoryStatuses = []TaskStatus{
	TaskStatusDelivered,
	TaskStatusCancelled,
}

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusAssigned:       {TaskStatusPickedUp, TaskStatusCancelled},
	TaskStatusPickedUp:       {TaskStatusOutForDelivery, TaskStatusDelivered, TaskStatusCancelled},
	TaskStatusOutForDelivery: {TaskStatusDelivered, TaskStatusCancelled},
}

// Valid reports whether s is a known status
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusAssigned, TaskStatusPickedUp, TaskStatusOutForDelivery,
		TaskStatusDelivered, TaskStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusDelivered || s == TaskStatusCancelled
}

// CanTransitionTo reports whether next is a documented edge from s
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SourcesFor returns every status that may move to next
func SourcesFor(next TaskStatus) []TaskStatus {
	var sources []TaskStatus
	for _, from := range OpenTaskStatuses {
		if from.CanTransitionTo(next) {
			sources = append(sources, from)
		}
	}
	return sources
}

// StatusStrings converts statuses for use as a SQL array argument
func StatusStrings(statuses []TaskStatus) pq.StringArray {
	out := make(pq.StringArray, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// SettlementStatus tracks reconciliation of collected cash
type SettlementStatus string

const (
	SettlementPending SettlementStatus = "pending"
	SettlementSettled SettlementStatus = "settled"
)

// Valid reports whether s is a known settlement status
func (s SettlementStatus) Valid() bool {
	return s == SettlementPending || s == SettlementSettled
}

// TaskItem is a line item snapshot taken at assignment time
type TaskItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// TaskItems is stored as JSONB
type TaskItems []TaskItem

// Value implements driver.Valuer
func (t TaskItems) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner
func (t *TaskItems) Scan(src interface{}) error {
	return scanJSON(src, t)
}

// Address is a pickup or drop-off snapshot
type Address struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	Phone   string  `json:"phone,omitempty"`
}

// Value implements driver.Valuer
func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *Address) Scan(src interface{}) error {
	return scanJSON(src, a)
}

func scanJSON(src interface{}, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported json source type %T", src)
	}
}

// DeliveryTask is the rider-facing projection of a dispatched sales order
type DeliveryTask struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	OrderID          uuid.UUID         `json:"-" db:"order_id"`
	OrderNumber      string            `json:"orderId" db:"order_number"`
	RiderID          uuid.UUID         `json:"assignedRider" db:"rider_id"`
	Items            TaskItems         `json:"items" db:"items"`
	Pickup           Address           `json:"pickup" db:"pickup"`
	Delivery         Address           `json:"delivery" db:"delivery"`
	CODAmount        int64             `json:"codAmount" db:"cod_amount"`
	Status           TaskStatus        `json:"status" db:"status"`
	OTPPickup        string            `json:"otpPickup,omitempty" db:"otp_pickup"`
	OTPDelivery      string            `json:"otpDelivery,omitempty" db:"otp_delivery"`
	Photos           pq.StringArray    `json:"photos" db:"photos"`
	CashCollected    *int64            `json:"cashCollected,omitempty" db:"cash_collected"`
	SettlementStatus *SettlementStatus `json:"cashSettlementStatus,omitempty" db:"cash_settlement_status"`
	Notes            string            `json:"notes,omitempty" db:"notes"`
	PickupTime       *time.Time        `json:"pickupTime,omitempty" db:"picked_up_at"`
	DeliveredAt      *time.Time        `json:"deliveredAt,omitempty" db:"delivered_at"`
	CancelledAt      *time.Time        `json:"cancelledAt,omitempty" db:"cancelled_at"`
	CancelReason     *string           `json:"cancelReason,omitempty" db:"cancel_reason"`
	CreatedAt        time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time         `json:"updatedAt" db:"updated_at"`
}

// Redacted returns a copy without the verification codes
func (t DeliveryTask) Redacted() DeliveryTask {
	t.OTPPickup = ""
	t.OTPDelivery = ""
	return t
}

// NavigationLink points a maps app at the drop-off coordinates
func (t *DeliveryTask) NavigationLink() string {
	return fmt.Sprintf("https://maps.google.com/?q=%v,%v", t.Delivery.Lat, t.Delivery.Lng)
}

// PickupRequest is the body of a pickup confirmation
type PickupRequest struct {
	OTP string `json:"otp,omitempty"`
}

// DeliverRequest is the body of a delivery confirmation
type DeliverRequest struct {
	OTP           string `json:"otp,omitempty"`
	PhotoProofURL string `json:"photoProofUrl,omitempty"`
	CashCollected *int64 `json:"cashCollected,omitempty"`
}

// CancelRequest is the body of a cancellation
type CancelRequest struct {
	Reason string `json:"reason"`
}

// SettlementRequest changes the settlement flag of a delivered task
type SettlementRequest struct {
	Status SettlementStatus `json:"status"`
}

// DeliveryCompletion carries everything the deliver transaction writes
type DeliveryCompletion struct {
	TaskID        uuid.UUID
	RiderID       uuid.UUID
	PhotoProofURL string
	CashCollected *int64
	Fee           int64
	DeliveredAt   time.Time
}

// StartDeliveryResponse is returned when a rider heads out
type StartDeliveryResponse struct {
	Order          DeliveryTask `json:"order"`
	NavigationLink string       `json:"navigationLink"`
}

// HistoryQuery filters a rider's past tasks
type HistoryQuery struct {
	Statuses []TaskStatus
	Limit    int
	Offset   int
}

// TaskHistory is a page of past tasks
type TaskHistory struct {
	Orders     []DeliveryTask `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

// ProofUpload is a proof-of-delivery image received from the rider app
type ProofUpload struct {
	ContentType string
	Size        int64
	Body        []byte
}

// ProofUploadResponse holds the stored object URL
type ProofUploadResponse struct {
	URL string `json:"url"`
}

// CODOrder is one line of the COD summary
type CODOrder struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	OrderNumber      string            `json:"orderId" db:"order_number"`
	CODAmount        int64             `json:"codAmount" db:"cod_amount"`
	CashCollected    *int64            `json:"cashCollected" db:"cash_collected"`
	SettlementStatus *SettlementStatus `json:"settlementStatus" db:"cash_settlement_status"`
	DeliveredAt      *time.Time        `json:"deliveredAt" db:"delivered_at"`
}

// CODSummary reports cash exposure for a rider
type CODSummary struct {
	TotalCOD          int64      `json:"totalCOD"`
	CollectedCOD      int64      `json:"collectedCOD"`
	PendingSettlement int        `json:"pendingSettlement"`
	Orders            []CODOrder `json:"orders"`
}
