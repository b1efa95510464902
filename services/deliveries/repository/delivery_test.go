package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/deliveries"
	"github.com/piresc/bikeparts/services/deliveries/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskColumns = []string{
	"id", "order_id", "order_number", "rider_id", "items", "pickup", "delivery", "cod_amount",
	"status", "otp_pickup", "otp_delivery", "photos", "cash_collected", "cash_settlement_status", "notes",
	"picked_up_at", "delivered_at", "cancelled_at", "cancel_reason", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func newRepo(db *sqlx.DB) *repository.DeliveryRepo {
	return repository.NewDeliveryRepository(&models.Config{}, db)
}

func taskRow(taskID, orderID, riderID uuid.UUID, status models.TaskStatus, cod int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(taskColumns).AddRow(
		taskID.String(), orderID.String(), "SO-1001", riderID.String(),
		[]byte(`[{"name":"Brake pad","quantity":2,"price":1500}]`),
		[]byte(`{"name":"Main Store","lat":6.9271,"lng":79.8612,"address":"Colombo"}`),
		[]byte(`{"name":"Nimal","lat":6.9,"lng":79.85,"address":"Galle Road"}`),
		cod, string(status), "123456", "654321", "{}", nil, nil, "",
		nil, nil, nil, nil, now, now,
	)
}

func TestGetSalesOrder_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	orderID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM sales_orders WHERE id = $1")).
		WithArgs(orderID).
		WillReturnError(sql.ErrNoRows)

	order, err := newRepo(db).GetSalesOrder(context.Background(), orderID)

	require.NoError(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTask_ScansSnapshots(t *testing.T) {
	db, mock := setupMockDB(t)
	taskID, orderID, riderID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM delivery_tasks WHERE id = $1 AND rider_id = $2")).
		WithArgs(taskID, riderID).
		WillReturnRows(taskRow(taskID, orderID, riderID, models.TaskStatusAssigned, 15000))

	task, err := newRepo(db).GetTask(context.Background(), riderID, taskID)

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, "Main Store", task.Pickup.Name)
	assert.Equal(t, 79.85, task.Delivery.Lng)
	require.Len(t, task.Items, 1)
	assert.Equal(t, 2, task.Items[0].Quantity)
	assert.Empty(t, task.Photos)
	assert.Nil(t, task.CashCollected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newAssignedTask() *models.DeliveryTask {
	now := time.Now()
	return &models.DeliveryTask{
		ID:          uuid.New(),
		OrderID:     uuid.New(),
		OrderNumber: "SO-1001",
		RiderID:     uuid.New(),
		Items:       models.TaskItems{{Name: "Chain", Quantity: 1, Price: 4200}},
		CODAmount:   4200,
		Status:      models.TaskStatusAssigned,
		OTPPickup:   "111111",
		OTPDelivery: "222222",
		Photos:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateAssignment_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	task := newAssignedTask()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM sales_orders WHERE id = $1 FOR UPDATE")).
		WithArgs(task.OrderID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("confirmed"))
	// the rider claim precedes the insert; fk_riders_current_task is deferred
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET current_task_id = $1")).
		WithArgs(task.ID, sqlmock.AnyArg(), task.RiderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO delivery_tasks")).
		WithArgs(task.ID, task.OrderID, task.OrderNumber, task.RiderID,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), task.CODAmount, "assigned",
			task.OTPPickup, task.OTPDelivery, sqlmock.AnyArg(), task.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sales_orders SET status = $1, assigned_rider_id = $2")).
		WithArgs("dispatched", task.RiderID, sqlmock.AnyArg(), task.OrderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(sqlmock.AnyArg(), "task.assigned", task.ID.String(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := newRepo(db).CreateAssignment(context.Background(), task)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignment_OrderNotDispatchable(t *testing.T) {
	db, mock := setupMockDB(t)
	task := newAssignedTask()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM sales_orders")).
		WithArgs(task.OrderID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("dispatched"))
	mock.ExpectRollback()

	err := newRepo(db).CreateAssignment(context.Background(), task)

	assert.ErrorIs(t, err, deliveries.ErrOrderNotAssignable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignment_RiderClaimRejected(t *testing.T) {
	testCases := []struct {
		name     string
		rows     *sqlmock.Rows
		expected error
	}{
		{
			name:     "rider busy",
			rows:     sqlmock.NewRows([]string{"is_active", "current_task_id"}).AddRow(true, uuid.New().String()),
			expected: deliveries.ErrRiderBusy,
		},
		{
			name:     "rider inactive",
			rows:     sqlmock.NewRows([]string{"is_active", "current_task_id"}).AddRow(false, nil),
			expected: deliveries.ErrRiderUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			task := newAssignedTask()

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM sales_orders")).
				WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("processing"))
			mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET current_task_id = $1")).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery(regexp.QuoteMeta("SELECT is_active, current_task_id FROM riders")).
				WithArgs(task.RiderID).
				WillReturnRows(tc.rows)
			mock.ExpectRollback()

			err := newRepo(db).CreateAssignment(context.Background(), task)

			assert.ErrorIs(t, err, tc.expected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkPickedUp_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	taskID, orderID, riderID := uuid.New(), uuid.New(), uuid.New()
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_tasks SET status = $3, updated_at = $4, picked_up_at = $4")).
		WithArgs(taskID, riderID, "picked_up", at, `{"assigned"}`).
		WillReturnRows(taskRow(taskID, orderID, riderID, models.TaskStatusPickedUp, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(sqlmock.AnyArg(), "task.picked_up", taskID.String(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	task, err := newRepo(db).MarkPickedUp(context.Background(), riderID, taskID, at)

	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPickedUp, task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPickedUp_Rejected(t *testing.T) {
	testCases := []struct {
		name      string
		statusRow *sqlmock.Rows
		kind      apperror.Kind
	}{
		{name: "already delivered", statusRow: sqlmock.NewRows([]string{"status"}).AddRow("delivered"), kind: apperror.KindConflict},
		{name: "not owned", statusRow: sqlmock.NewRows([]string{"status"}), kind: apperror.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			taskID, riderID := uuid.New(), uuid.New()

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_tasks")).
				WillReturnRows(sqlmock.NewRows(taskColumns))
			mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM delivery_tasks WHERE id = $1 AND rider_id = $2")).
				WithArgs(taskID, riderID).
				WillReturnRows(tc.statusRow)
			mock.ExpectRollback()

			task, err := newRepo(db).MarkPickedUp(context.Background(), riderID, taskID, time.Now())

			assert.Nil(t, task)
			assert.True(t, apperror.Is(err, tc.kind))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCompleteDelivery_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	taskID, orderID, riderID := uuid.New(), uuid.New(), uuid.New()
	cash := int64(15000)
	completion := models.DeliveryCompletion{
		TaskID:        taskID,
		RiderID:       riderID,
		PhotoProofURL: "https://cdn.example.com/proofs/p.jpg",
		CashCollected: &cash,
		Fee:           1500,
		DeliveredAt:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_tasks SET status = $3")).
		WithArgs(taskID, riderID, "delivered", completion.DeliveredAt, `{"picked_up","out_for_delivery"}`,
			completion.PhotoProofURL, cash).
		WillReturnRows(taskRow(taskID, orderID, riderID, models.TaskStatusDelivered, 15000))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rider_earnings")).
		WithArgs(sqlmock.AnyArg(), riderID, taskID, "SO-1001", int64(1500), "delivery", completion.DeliveredAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET")).
		WithArgs(int64(1500), taskID, completion.DeliveredAt, riderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sales_orders SET status = $1")).
		WithArgs("delivered", completion.DeliveredAt, orderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(sqlmock.AnyArg(), "task.delivered", taskID.String(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	task, err := newRepo(db).CompleteDelivery(context.Background(), completion)

	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDelivered, task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteDelivery_LedgerFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	taskID, orderID, riderID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_tasks SET status = $3")).
		WillReturnRows(taskRow(taskID, orderID, riderID, models.TaskStatusDelivered, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rider_earnings")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	task, err := newRepo(db).CompleteDelivery(context.Background(), models.DeliveryCompletion{
		TaskID: taskID, RiderID: riderID, Fee: 50, DeliveredAt: time.Now(),
	})

	assert.Nil(t, task)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelTask_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	taskID, orderID, riderID := uuid.New(), uuid.New(), uuid.New()
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_tasks SET status = $3, updated_at = $4, cancelled_at = $4, cancel_reason = $6")).
		WithArgs(taskID, riderID, "cancelled", at, `{"assigned","picked_up","out_for_delivery"}`, "Customer moved away").
		WillReturnRows(taskRow(taskID, orderID, riderID, models.TaskStatusCancelled, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET current_task_id = NULL")).
		WithArgs(at, riderID, taskID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sales_orders SET status = $1, assigned_rider_id = NULL")).
		WithArgs("confirmed", at, orderID, "dispatched").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(sqlmock.AnyArg(), "task.cancelled", taskID.String(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	task, err := newRepo(db).CancelTask(context.Background(), riderID, taskID, "Customer moved away", at)

	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCancelled, task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHistory(t *testing.T) {
	db, mock := setupMockDB(t)
	riderID := uuid.New()
	query := models.HistoryQuery{Statuses: models.DefaultHistoryStatuses, Limit: 1, Offset: 0}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM delivery_tasks")).
		WithArgs(riderID, `{"delivered","cancelled"}`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY updated_at DESC")).
		WithArgs(riderID, `{"delivered","cancelled"}`, 1, 0).
		WillReturnRows(taskRow(uuid.New(), uuid.New(), riderID, models.TaskStatusDelivered, 0))

	tasks, total, err := newRepo(db).ListHistory(context.Background(), riderID, query)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, tasks, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSettlement(t *testing.T) {
	db, mock := setupMockDB(t)
	riderID, taskID, orderID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_tasks SET cash_settlement_status = $1")).
		WithArgs("settled", sqlmock.AnyArg(), taskID, riderID, "delivered").
		WillReturnRows(taskRow(taskID, orderID, riderID, models.TaskStatusDelivered, 500))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_tasks SET cash_settlement_status = $1")).
		WithArgs("settled", sqlmock.AnyArg(), taskID, riderID, "delivered").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	repo := newRepo(db)
	task, err := repo.UpdateSettlement(context.Background(), riderID, taskID, models.SettlementSettled)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, int64(500), task.CODAmount)

	task, err = repo.UpdateSettlement(context.Background(), riderID, taskID, models.SettlementSettled)
	require.NoError(t, err)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCODOrders(t *testing.T) {
	db, mock := setupMockDB(t)
	riderID := uuid.New()
	deliveredAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE rider_id = $1 AND status = $2 AND cod_amount > 0")).
		WithArgs(riderID, "delivered").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "cod_amount", "cash_collected", "cash_settlement_status", "delivered_at"}).
			AddRow(uuid.New().String(), "SO-1", int64(2000), int64(2000), "pending", deliveredAt).
			AddRow(uuid.New().String(), "SO-2", int64(500), nil, nil, deliveredAt))

	orders, err := newRepo(db).ListCODOrders(context.Background(), riderID)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2000), *orders[0].CashCollected)
	assert.Equal(t, models.SettlementPending, *orders[0].SettlementStatus)
	assert.Nil(t, orders[1].CashCollected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
