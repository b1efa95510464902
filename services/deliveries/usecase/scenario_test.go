package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/deliveries"
	"github.com/piresc/bikeparts/services/deliveries/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// riderDesk holds the rows a delivery flow touches and applies the same
// effects the repository commits.
type riderDesk struct {
	order *models.SalesOrder
	rider *models.Rider
	task  *models.DeliveryTask
	fee   int64
}

func newRiderDesk(cod int64) *riderDesk {
	return &riderDesk{
		order: &models.SalesOrder{
			ID:              uuid.New(),
			OrderNumber:     "SO-3001",
			Status:          models.SalesOrderConfirmed,
			PaymentMethod:   models.PaymentMethodCOD,
			TotalAmount:     cod,
			Items:           models.TaskItems{{Name: "Inner tube", Quantity: 2, Price: cod / 2}},
			ShippingAddress: models.Address{Name: "Sunil", Lat: 6.91, Lng: 79.86, Address: "Duplication Road"},
		},
		rider: &models.Rider{ID: uuid.New(), IsActive: true, WalletBalance: 0},
	}
}

func (d *riderDesk) copyTask() *models.DeliveryTask {
	task := *d.task
	return &task
}

func (d *riderDesk) expectAssign(repo *mocks.MockDeliveryRepo) *gomock.Call {
	return repo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *models.DeliveryTask) error {
			stored := *task
			d.task = &stored
			d.rider.CurrentTaskID = &stored.ID
			d.order.Status = models.SalesOrderDispatched
			return nil
		})
}

func (d *riderDesk) expectGetTask(repo *mocks.MockDeliveryRepo) *gomock.Call {
	return repo.EXPECT().GetTask(gomock.Any(), d.rider.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*models.DeliveryTask, error) {
			return d.copyTask(), nil
		})
}

func (d *riderDesk) expectMove(call *gomock.Call, to models.TaskStatus) *gomock.Call {
	return call.DoAndReturn(func(_ context.Context, _, _ uuid.UUID, at time.Time) (*models.DeliveryTask, error) {
		d.task.Status = to
		d.task.UpdatedAt = at
		if to == models.TaskStatusPickedUp {
			d.task.PickupTime = &at
		}
		return d.copyTask(), nil
	})
}

func (d *riderDesk) expectComplete(repo *mocks.MockDeliveryRepo) *gomock.Call {
	return repo.EXPECT().CompleteDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.DeliveryCompletion) (*models.DeliveryTask, error) {
			d.task.Status = models.TaskStatusDelivered
			d.task.DeliveredAt = &c.DeliveredAt
			if c.CashCollected != nil {
				pending := models.SettlementPending
				d.task.CashCollected = c.CashCollected
				d.task.SettlementStatus = &pending
			}
			d.fee = c.Fee
			d.rider.WalletBalance += c.Fee
			d.rider.TotalDeliveries++
			d.rider.CurrentTaskID = nil
			d.order.Status = models.SalesOrderDelivered
			return d.copyTask(), nil
		})
}

func TestDeliveryScenario_AssignPickupStartDeliverCash(t *testing.T) {
	// Arrange
	uc, repo, _ := setupUC(t)
	desk := newRiderDesk(500)
	cash := int64(500)

	gomock.InOrder(
		repo.EXPECT().GetSalesOrder(gomock.Any(), desk.order.ID).Return(desk.order, nil),
		repo.EXPECT().GetRider(gomock.Any(), desk.rider.ID).Return(desk.rider, nil),
		desk.expectAssign(repo),

		desk.expectGetTask(repo),
		desk.expectMove(repo.EXPECT().MarkPickedUp(gomock.Any(), desk.rider.ID, gomock.Any(), fixedNow), models.TaskStatusPickedUp),

		desk.expectGetTask(repo),
		desk.expectMove(repo.EXPECT().MarkOutForDelivery(gomock.Any(), desk.rider.ID, gomock.Any(), fixedNow), models.TaskStatusOutForDelivery),

		desk.expectGetTask(repo),
		desk.expectComplete(repo),
	)

	// Act - Step 1: dispatch
	assigned, err := uc.AssignOrder(context.Background(), models.AssignOrderRequest{OrderID: desk.order.ID, RiderID: desk.rider.ID})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusAssigned, assigned.Status)
	assert.Equal(t, int64(500), assigned.CODAmount)
	assert.Equal(t, assigned.ID, *desk.rider.CurrentTaskID)

	// Act - Step 2: pickup with the code the store read out
	picked, err := uc.Pickup(context.Background(), desk.rider.ID, assigned.ID, models.PickupRequest{OTP: assigned.OTPPickup})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPickedUp, picked.Status)
	assert.Empty(t, picked.OTPDelivery)

	// Act - Step 3: head to the customer
	started, err := uc.StartDelivery(context.Background(), desk.rider.ID, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusOutForDelivery, started.Order.Status)

	// Act - Step 4: hand over and collect cash
	delivered, err := uc.Deliver(context.Background(), desk.rider.ID, assigned.ID, models.DeliverRequest{
		OTP:           assigned.OTPDelivery,
		CashCollected: &cash,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDelivered, delivered.Status)
	require.NotNil(t, delivered.SettlementStatus)
	assert.Equal(t, models.SettlementPending, *delivered.SettlementStatus)
	assert.Equal(t, int64(500), *delivered.CashCollected)
	assert.Equal(t, int64(50), desk.fee)
	assert.Equal(t, int64(50), desk.rider.WalletBalance)
	assert.Equal(t, 1, desk.rider.TotalDeliveries)
	assert.Nil(t, desk.rider.CurrentTaskID)
	assert.Equal(t, models.SalesOrderDelivered, desk.order.Status)
}

func TestDeliveryScenario_WrongPickupOTPKeepsTaskAssigned(t *testing.T) {
	// Arrange
	uc, repo, _ := setupUC(t)
	desk := newRiderDesk(500)

	gomock.InOrder(
		repo.EXPECT().GetSalesOrder(gomock.Any(), desk.order.ID).Return(desk.order, nil),
		repo.EXPECT().GetRider(gomock.Any(), desk.rider.ID).Return(desk.rider, nil),
		desk.expectAssign(repo),
		desk.expectGetTask(repo),
		desk.expectGetTask(repo),
	)

	assigned, err := uc.AssignOrder(context.Background(), models.AssignOrderRequest{OrderID: desk.order.ID, RiderID: desk.rider.ID})
	require.NoError(t, err)

	// Act: generated codes start at 100000
	_, err = uc.Pickup(context.Background(), desk.rider.ID, assigned.ID, models.PickupRequest{OTP: "000000"})

	// Assert
	assert.ErrorIs(t, err, deliveries.ErrInvalidPickupOTP)

	current, err := uc.GetTask(context.Background(), desk.rider.ID, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusAssigned, current.Status)
	assert.Nil(t, current.PickupTime)
	assert.Equal(t, assigned.ID, *desk.rider.CurrentTaskID)
}
