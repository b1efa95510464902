package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/services/deliveries"
)

// AssignOrder hands a dispatchable sales order to an idle active rider
func (uc *DeliveryUC) AssignOrder(ctx context.Context, req models.AssignOrderRequest) (*models.DeliveryTask, error) {
	if req.OrderID == uuid.Nil || req.RiderID == uuid.Nil {
		return nil, apperror.Validation("orderId and riderId are required")
	}

	order, err := uc.deliveryRepo.GetSalesOrder(ctx, req.OrderID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load order")
	}
	if order == nil {
		return nil, deliveries.ErrOrderNotFound
	}
	if !order.Status.Dispatchable() {
		return nil, deliveries.ErrOrderNotAssignable
	}

	rider, err := uc.deliveryRepo.GetRider(ctx, req.RiderID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load rider")
	}
	if rider == nil || !rider.IsActive {
		return nil, deliveries.ErrRiderUnavailable
	}
	if rider.CurrentTaskID != nil {
		return nil, deliveries.ErrRiderBusy
	}

	pickupOTP, deliveryOTP, err := uc.otp.Pair()
	if err != nil {
		return nil, apperror.Internal(err, "Failed to generate OTP")
	}

	task := uc.newTask(order, rider.ID, pickupOTP, deliveryOTP)

	err = nrpkg.WithSegment(ctx, "DeliveryRepo.CreateAssignment", func() error {
		return uc.deliveryRepo.CreateAssignment(ctx, task)
	})
	if err != nil {
		return nil, passThrough(err, "Failed to assign order")
	}

	logger.InfoCtx(ctx, "Order assigned",
		logger.TaskID(task.ID),
		logger.RiderID(rider.ID),
		logger.String("order_number", task.OrderNumber),
		logger.Int64("cod_amount", task.CODAmount))

	return task, nil
}

// newTask snapshots the order into a task. Sales orders carry no pickup
// address, so the configured store is used.
func (uc *DeliveryUC) newTask(order *models.SalesOrder, riderID uuid.UUID, pickupOTP, deliveryOTP string) *models.DeliveryTask {
	now := uc.now()
	store := uc.cfg.Delivery
	items := order.Items
	if items == nil {
		items = models.TaskItems{}
	}
	return &models.DeliveryTask{
		ID:          uuid.New(),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		RiderID:     riderID,
		Items:       items,
		Pickup: models.Address{
			Name:    store.StoreName,
			Lat:     store.StoreLat,
			Lng:     store.StoreLng,
			Address: store.StoreAddress,
			Phone:   store.StorePhone,
		},
		Delivery:    order.ShippingAddress,
		CODAmount:   order.CODAmount(),
		Status:      models.TaskStatusAssigned,
		OTPPickup:   pickupOTP,
		OTPDelivery: deliveryOTP,
		Photos:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// passThrough keeps domain errors and wraps everything else as internal
func passThrough(err error, message string) error {
	if apperror.KindOf(err) != apperror.KindInternal {
		return err
	}
	return apperror.Internal(err, message)
}
