package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PayoutMethod is how a rider receives withdrawn funds
type PayoutMethod string

const (
	PayoutBankTransfer PayoutMethod = "bank_transfer"
	PayoutCash         PayoutMethod = "cash"
	PayoutWallet       PayoutMethod = "wallet"
)

// Valid reports whether m is a supported payout method
func (m PayoutMethod) Valid() bool {
	return m == PayoutBankTransfer || m == PayoutCash || m == PayoutWallet
}

// PayoutStatus is the processing state of a payout
type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

// BankDetails identifies the destination account of a bank transfer
type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
	BranchCode        string `json:"branchCode,omitempty"`
}

// Complete reports whether every mandatory field is present
func (b *BankDetails) Complete() bool {
	return b != nil && b.AccountNumber != "" && b.BankName != "" && b.AccountHolderName != ""
}

// Value implements driver.Valuer
func (b BankDetails) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements sql.Scanner
func (b *BankDetails) Scan(src interface{}) error {
	return scanJSON(src, b)
}

// Payout is a withdrawal against a rider wallet
type Payout struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	RiderID       uuid.UUID    `json:"riderId" db:"rider_id"`
	Amount        int64        `json:"amount" db:"amount"`
	Method        PayoutMethod `json:"payoutMethod" db:"method"`
	Status        PayoutStatus `json:"status" db:"status"`
	BankDetails   *BankDetails `json:"bankDetails,omitempty" db:"bank_details"`
	Reference     *string      `json:"reference,omitempty" db:"reference"`
	FailureReason *string      `json:"failureReason,omitempty" db:"failure_reason"`
	ProcessedAt   *time.Time   `json:"processedAt,omitempty" db:"processed_at"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time    `json:"updatedAt" db:"updated_at"`
}

// PayoutRequest is the body of a withdrawal request
type PayoutRequest struct {
	Amount       int64        `json:"amount"`
	PayoutMethod PayoutMethod `json:"payoutMethod"`
	BankDetails  *BankDetails `json:"bankDetails,omitempty"`
}

// PayoutResolution is sent by the back office to close a payout
type PayoutResolution struct {
	Reference     string `json:"reference,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`
}

// EarningKind classifies a ledger entry
type EarningKind string

const (
	EarningDelivery EarningKind = "delivery"
	EarningBonus    EarningKind = "bonus"
	EarningPenalty  EarningKind = "penalty"
)

// Earning is one append-only rider ledger row
type Earning struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	RiderID     uuid.UUID   `json:"riderId" db:"rider_id"`
	TaskID      *uuid.UUID  `json:"taskId,omitempty" db:"task_id"`
	OrderNumber string      `json:"orderId" db:"order_number"`
	Amount      int64       `json:"amount" db:"amount"`
	Kind        EarningKind `json:"type" db:"kind"`
	CreatedAt   time.Time   `json:"date" db:"created_at"`
}

// EarningsReport lists ledger rows in a window with their total
type EarningsReport struct {
	Total         int64     `json:"total"`
	Earnings      []Earning `json:"earnings"`
	WalletBalance int64     `json:"walletBalance"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
}

// PayoutHistory is a page of payouts
type PayoutHistory struct {
	Payouts    []Payout   `json:"payouts"`
	Pagination Pagination `json:"pagination"`
}
