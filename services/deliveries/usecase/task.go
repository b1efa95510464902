package usecase

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/pkg/otp"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/deliveries"
)

const minCancelReasonLength = 5

// Pickup confirms collection at the store
func (uc *DeliveryUC) Pickup(ctx context.Context, riderID, taskID uuid.UUID, req models.PickupRequest) (*models.DeliveryTask, error) {
	if !otp.WellFormed(req.OTP) {
		return nil, deliveries.ErrMalformedOTP
	}

	task, err := uc.ownedTask(ctx, riderID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Status.CanTransitionTo(models.TaskStatusPickedUp) {
		return nil, deliveries.TransitionConflict(task.Status, models.TaskStatusPickedUp)
	}
	if !otp.Match(task.OTPPickup, req.OTP) {
		return nil, deliveries.ErrInvalidPickupOTP
	}

	updated, err := uc.deliveryRepo.MarkPickedUp(ctx, riderID, taskID, uc.now())
	if err != nil {
		return nil, passThrough(err, "Failed to confirm pickup")
	}
	return redacted(updated), nil
}

// StartDelivery marks the rider as heading to the customer
func (uc *DeliveryUC) StartDelivery(ctx context.Context, riderID, taskID uuid.UUID) (*models.StartDeliveryResponse, error) {
	task, err := uc.ownedTask(ctx, riderID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Status.CanTransitionTo(models.TaskStatusOutForDelivery) {
		return nil, deliveries.TransitionConflict(task.Status, models.TaskStatusOutForDelivery)
	}

	updated, err := uc.deliveryRepo.MarkOutForDelivery(ctx, riderID, taskID, uc.now())
	if err != nil {
		return nil, passThrough(err, "Failed to start delivery")
	}
	return &models.StartDeliveryResponse{
		Order:          updated.Redacted(),
		NavigationLink: updated.NavigationLink(),
	}, nil
}

// Deliver completes a task and credits the rider's fee
func (uc *DeliveryUC) Deliver(ctx context.Context, riderID, taskID uuid.UUID, req models.DeliverRequest) (*models.DeliveryTask, error) {
	if !otp.WellFormed(req.OTP) {
		return nil, deliveries.ErrMalformedOTP
	}
	if req.CashCollected != nil && *req.CashCollected < 0 {
		return nil, apperror.Validation("cashCollected must not be negative")
	}
	if req.PhotoProofURL != "" && !utils.IsHTTPURL(req.PhotoProofURL) {
		return nil, apperror.Validation("photoProofUrl must be an absolute http(s) URL")
	}

	task, err := uc.ownedTask(ctx, riderID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Status.CanTransitionTo(models.TaskStatusDelivered) {
		return nil, deliveries.TransitionConflict(task.Status, models.TaskStatusDelivered)
	}
	if !otp.Match(task.OTPDelivery, req.OTP) {
		return nil, deliveries.ErrInvalidDeliveryOTP
	}

	completion := models.DeliveryCompletion{
		TaskID:        taskID,
		RiderID:       riderID,
		PhotoProofURL: req.PhotoProofURL,
		CashCollected: req.CashCollected,
		Fee:           DeliveryFee(task.CODAmount, uc.cfg.Delivery),
		DeliveredAt:   uc.now(),
	}

	updated, err := nrpkg.WithSegmentAndReturn(ctx, "DeliveryRepo.CompleteDelivery", func() (*models.DeliveryTask, error) {
		return uc.deliveryRepo.CompleteDelivery(ctx, completion)
	})
	if err != nil {
		return nil, passThrough(err, "Failed to complete delivery")
	}

	logger.InfoCtx(ctx, "Delivery completed",
		logger.TaskID(taskID),
		logger.RiderID(riderID),
		logger.Int64("fee", completion.Fee),
		logger.Int64("cod_amount", updated.CODAmount))

	return redacted(updated), nil
}

// Cancel abandons a task that has not reached a terminal state
func (uc *DeliveryUC) Cancel(ctx context.Context, riderID, taskID uuid.UUID, req models.CancelRequest) (*models.DeliveryTask, error) {
	reason := strings.TrimSpace(req.Reason)
	if utf8.RuneCountInString(reason) < minCancelReasonLength {
		return nil, apperror.Validation("Cancellation reason must be at least 5 characters")
	}

	task, err := uc.ownedTask(ctx, riderID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Status.CanTransitionTo(models.TaskStatusCancelled) {
		return nil, deliveries.TransitionConflict(task.Status, models.TaskStatusCancelled)
	}

	updated, err := uc.deliveryRepo.CancelTask(ctx, riderID, taskID, reason, uc.now())
	if err != nil {
		return nil, passThrough(err, "Failed to cancel order")
	}

	logger.InfoCtx(ctx, "Delivery cancelled",
		logger.TaskID(taskID),
		logger.RiderID(riderID),
		logger.String("reason", reason))

	return redacted(updated), nil
}

// ListTasks returns the rider's tasks. An empty status or "open" selects
// every non-terminal status.
func (uc *DeliveryUC) ListTasks(ctx context.Context, riderID uuid.UUID, status string) ([]models.DeliveryTask, error) {
	statuses := models.OpenTaskStatuses
	if status != "" && status != "open" {
		s := models.TaskStatus(status)
		if !s.Valid() {
			return nil, apperror.Validation("Invalid status filter: " + status)
		}
		statuses = []models.TaskStatus{s}
	}

	tasks, err := uc.deliveryRepo.ListTasks(ctx, riderID, statuses)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to list orders")
	}
	return redactAll(tasks), nil
}

// GetTask returns one task owned by the rider
func (uc *DeliveryUC) GetTask(ctx context.Context, riderID, taskID uuid.UUID) (*models.DeliveryTask, error) {
	task, err := uc.ownedTask(ctx, riderID, taskID)
	if err != nil {
		return nil, err
	}
	return redacted(task), nil
}

// History pages through past tasks, most recently updated first
func (uc *DeliveryUC) History(ctx context.Context, riderID uuid.UUID, query models.HistoryQuery) (*models.TaskHistory, error) {
	if len(query.Statuses) == 0 {
		query.Statuses = models.DefaultHistoryStatuses
	}
	for _, s := range query.Statuses {
		if !s.Valid() {
			return nil, apperror.Validation("Invalid status filter: " + string(s))
		}
	}
	query.Limit, query.Offset = utils.ClampPage(query.Limit, query.Offset, 50, 100)

	tasks, total, err := uc.deliveryRepo.ListHistory(ctx, riderID, query)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load order history")
	}
	return &models.TaskHistory{
		Orders:     redactAll(tasks),
		Pagination: models.NewPagination(total, query.Limit, query.Offset),
	}, nil
}

// DeliveryFee is the rider's cut: a share of the cash collected, or a flat
// fee for prepaid orders
func DeliveryFee(codAmount int64, cfg models.DeliveryConfig) int64 {
	if codAmount > 0 {
		return int64(math.Round(float64(codAmount) * cfg.FeeRate))
	}
	return cfg.FallbackFee
}

func (uc *DeliveryUC) ownedTask(ctx context.Context, riderID, taskID uuid.UUID) (*models.DeliveryTask, error) {
	task, err := uc.deliveryRepo.GetTask(ctx, riderID, taskID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load order")
	}
	if task == nil {
		return nil, deliveries.ErrTaskNotFound
	}
	return task, nil
}

func redacted(task *models.DeliveryTask) *models.DeliveryTask {
	r := task.Redacted()
	return &r
}

func redactAll(tasks []models.DeliveryTask) []models.DeliveryTask {
	out := make([]models.DeliveryTask, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Redacted()
	}
	return out
}
