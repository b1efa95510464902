package deliveries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bikeparts/services/deliveries DeliveryRepo

// DeliveryRepo defines data access for delivery tasks. Every mutation runs in
// one transaction together with its outbox event.
type DeliveryRepo interface {
	GetSalesOrder(ctx context.Context, orderID uuid.UUID) (*models.SalesOrder, error)
	GetRider(ctx context.Context, riderID uuid.UUID) (*models.Rider, error)
	CreateAssignment(ctx context.Context, task *models.DeliveryTask) error

	GetTask(ctx context.Context, riderID, taskID uuid.UUID) (*models.DeliveryTask, error)
	MarkPickedUp(ctx context.Context, riderID, taskID uuid.UUID, at time.Time) (*models.DeliveryTask, error)
	MarkOutForDelivery(ctx context.Context, riderID, taskID uuid.UUID, at time.Time) (*models.DeliveryTask, error)
	CompleteDelivery(ctx context.Context, completion models.DeliveryCompletion) (*models.DeliveryTask, error)
	CancelTask(ctx context.Context, riderID, taskID uuid.UUID, reason string, at time.Time) (*models.DeliveryTask, error)

	ListTasks(ctx context.Context, riderID uuid.UUID, statuses []models.TaskStatus) ([]models.DeliveryTask, error)
	ListHistory(ctx context.Context, riderID uuid.UUID, query models.HistoryQuery) ([]models.DeliveryTask, int, error)

	ListCODOrders(ctx context.Context, riderID uuid.UUID) ([]models.CODOrder, error)
	UpdateSettlement(ctx context.Context, riderID, taskID uuid.UUID, status models.SettlementStatus) (*models.DeliveryTask, error)
}
