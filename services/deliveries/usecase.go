package deliveries

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bikeparts/services/deliveries DeliveryUC

// DeliveryUC covers order assignment, the rider task lifecycle and cash reconciliation
type DeliveryUC interface {
	// back office
	AssignOrder(ctx context.Context, req models.AssignOrderRequest) (*models.DeliveryTask, error)

	// task lifecycle
	Pickup(ctx context.Context, riderID, taskID uuid.UUID, req models.PickupRequest) (*models.DeliveryTask, error)
	StartDelivery(ctx context.Context, riderID, taskID uuid.UUID) (*models.StartDeliveryResponse, error)
	Deliver(ctx context.Context, riderID, taskID uuid.UUID, req models.DeliverRequest) (*models.DeliveryTask, error)
	Cancel(ctx context.Context, riderID, taskID uuid.UUID, req models.CancelRequest) (*models.DeliveryTask, error)
	UploadProof(ctx context.Context, riderID, taskID uuid.UUID, upload models.ProofUpload) (*models.ProofUploadResponse, error)

	// queries
	ListTasks(ctx context.Context, riderID uuid.UUID, status string) ([]models.DeliveryTask, error)
	GetTask(ctx context.Context, riderID, taskID uuid.UUID) (*models.DeliveryTask, error)
	History(ctx context.Context, riderID uuid.UUID, query models.HistoryQuery) (*models.TaskHistory, error)

	// cash on delivery
	CODSummary(ctx context.Context, riderID uuid.UUID) (*models.CODSummary, error)
	UpdateSettlement(ctx context.Context, riderID, taskID uuid.UUID, req models.SettlementRequest) (*models.DeliveryTask, error)
}
