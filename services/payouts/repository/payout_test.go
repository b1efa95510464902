package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/payouts"
	"github.com/piresc/bikeparts/services/payouts/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var payoutColumns = []string{
	"id", "rider_id", "amount", "method", "status", "bank_details", "reference",
	"failure_reason", "processed_at", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*repository.PayoutRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return repository.NewPayoutRepository(&models.Config{}, sqlx.NewDb(mockDB, "sqlmock")), mock
}

func newPendingPayout() *models.Payout {
	now := time.Now()
	return &models.Payout{
		ID:        uuid.New(),
		RiderID:   uuid.New(),
		Amount:    500,
		Method:    models.PayoutCash,
		Status:    models.PayoutPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreatePayout_Success(t *testing.T) {
	repo, mock := setupMockDB(t)
	payout := newPendingPayout()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET wallet_balance = wallet_balance - $1")).
		WithArgs(payout.Amount, payout.CreatedAt, payout.RiderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payouts")).
		WithArgs(payout.ID, payout.RiderID, payout.Amount, "cash", "pending", nil, payout.CreatedAt, payout.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(sqlmock.AnyArg(), "payout.requested", payout.ID.String(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreatePayout(context.Background(), payout)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePayout_InsufficientBalance(t *testing.T) {
	repo, mock := setupMockDB(t)
	payout := newPendingPayout()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET wallet_balance = wallet_balance - $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CreatePayout(context.Background(), payout)

	assert.Equal(t, payouts.ErrInsufficientBalance, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePayout_InsertFailureRollsBack(t *testing.T) {
	repo, mock := setupMockDB(t)
	payout := newPendingPayout()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET wallet_balance")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payouts")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.CreatePayout(context.Background(), payout)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert payout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolvePayout_FailedRefundsWallet(t *testing.T) {
	repo, mock := setupMockDB(t)
	payoutID, riderID := uuid.New(), uuid.New()
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE payouts SET")).
		WithArgs("failed", "", "Account closed", at, payoutID, `{"pending","processing"}`).
		WillReturnRows(sqlmock.NewRows(payoutColumns).AddRow(
			payoutID.String(), riderID.String(), 750, "bank_transfer", "failed",
			[]byte(`{"accountNumber":"1","bankName":"BOC","accountHolderName":"N"}`),
			nil, "Account closed", at, at, at))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET wallet_balance = wallet_balance + $1")).
		WithArgs(int64(750), at, riderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(sqlmock.AnyArg(), "payout.failed", payoutID.String(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payout, err := repo.ResolvePayout(context.Background(), payoutID, models.PayoutFailed,
		models.PayoutResolution{FailureReason: "Account closed"}, at)

	require.NoError(t, err)
	assert.Equal(t, models.PayoutFailed, payout.Status)
	require.NotNil(t, payout.BankDetails)
	assert.Equal(t, "BOC", payout.BankDetails.BankName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolvePayout_CompletedDoesNotRefund(t *testing.T) {
	repo, mock := setupMockDB(t)
	payoutID, riderID := uuid.New(), uuid.New()
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE payouts SET")).
		WillReturnRows(sqlmock.NewRows(payoutColumns).AddRow(
			payoutID.String(), riderID.String(), 750, "cash", "completed",
			nil, "TRX-9", nil, at, at, at))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(sqlmock.AnyArg(), "payout.completed", payoutID.String(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payout, err := repo.ResolvePayout(context.Background(), payoutID, models.PayoutCompleted,
		models.PayoutResolution{Reference: "TRX-9"}, at)

	require.NoError(t, err)
	require.NotNil(t, payout.Reference)
	assert.Equal(t, "TRX-9", *payout.Reference)
	assert.Nil(t, payout.BankDetails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolvePayout_ClassifiesMiss(t *testing.T) {
	tests := []struct {
		name    string
		lookup  func(*sqlmock.ExpectedQuery)
		wantErr error
	}{
		{
			name: "unknown payout",
			lookup: func(q *sqlmock.ExpectedQuery) {
				q.WillReturnError(sql.ErrNoRows)
			},
			wantErr: payouts.ErrPayoutNotFound,
		},
		{
			name: "already completed",
			lookup: func(q *sqlmock.ExpectedQuery) {
				q.WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("completed"))
			},
			wantErr: payouts.ErrPayoutClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMockDB(t)
			payoutID := uuid.New()

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("UPDATE payouts SET")).WillReturnError(sql.ErrNoRows)
			tt.lookup(mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM payouts WHERE id = $1")).WithArgs(payoutID))
			mock.ExpectRollback()

			_, err := repo.ResolvePayout(context.Background(), payoutID, models.PayoutCompleted,
				models.PayoutResolution{}, time.Now())

			assert.Equal(t, tt.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListPayouts(t *testing.T) {
	repo, mock := setupMockDB(t)
	riderID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM payouts WHERE rider_id = $1")).
		WithArgs(riderID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(riderID, 2, 0).
		WillReturnRows(sqlmock.NewRows(payoutColumns).
			AddRow(uuid.New().String(), riderID.String(), 100, "cash", "pending", nil, nil, nil, nil, now, now).
			AddRow(uuid.New().String(), riderID.String(), 200, "wallet", "completed", nil, nil, nil, now, now, now))

	list, total, err := repo.ListPayouts(context.Background(), riderID, 2, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEarnings(t *testing.T) {
	repo, mock := setupMockDB(t)
	riderID, taskID := uuid.New(), uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rider_earnings")).
		WithArgs(riderID, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rider_id", "task_id", "order_number", "amount", "kind", "created_at"}).
			AddRow(uuid.New().String(), riderID.String(), taskID.String(), "SO-1", 120, "delivery", from))

	earnings, err := repo.ListEarnings(context.Background(), riderID, from, to)

	require.NoError(t, err)
	require.Len(t, earnings, 1)
	require.NotNil(t, earnings[0].TaskID)
	assert.Equal(t, taskID, *earnings[0].TaskID)
	assert.Equal(t, models.EarningDelivery, earnings[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWalletBalance_UnknownRider(t *testing.T) {
	repo, mock := setupMockDB(t)
	riderID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT wallet_balance FROM riders WHERE id = $1")).
		WithArgs(riderID).
		WillReturnError(sql.ErrNoRows)

	balance, err := repo.GetWalletBalance(context.Background(), riderID)

	require.NoError(t, err)
	assert.Nil(t, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
