package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/deliveries"
)

// CODSummary totals the cash owed by the rider across delivered orders
func (uc *DeliveryUC) CODSummary(ctx context.Context, riderID uuid.UUID) (*models.CODSummary, error) {
	orders, err := uc.deliveryRepo.ListCODOrders(ctx, riderID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load COD summary")
	}

	summary := &models.CODSummary{Orders: orders}
	for _, o := range orders {
		summary.TotalCOD += o.CODAmount
		if o.CashCollected != nil {
			summary.CollectedCOD += *o.CashCollected
		}
		if o.SettlementStatus != nil && *o.SettlementStatus == models.SettlementPending {
			summary.PendingSettlement++
		}
	}
	return summary, nil
}

// UpdateSettlement flags a delivered cash order as pending or settled
func (uc *DeliveryUC) UpdateSettlement(ctx context.Context, riderID, taskID uuid.UUID, req models.SettlementRequest) (*models.DeliveryTask, error) {
	if !req.Status.Valid() {
		return nil, apperror.Validation("Invalid settlement status")
	}

	task, err := uc.deliveryRepo.UpdateSettlement(ctx, riderID, taskID, req.Status)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to update settlement")
	}
	if task == nil {
		return nil, deliveries.ErrNotDelivered
	}
	return redacted(task), nil
}
