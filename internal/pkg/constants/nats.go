package constants

// NATS Subjects
const (
	// Delivery task events
	SubjectTaskAssigned  = "task.assigned"
	SubjectTaskPickedUp  = "task.picked_up"
	SubjectTaskStarted   = "task.out_for_delivery"
	SubjectTaskDelivered = "task.delivered"
	SubjectTaskCancelled = "task.cancelled"
	SubjectTaskAll       = "task.>"

	// Payout events
	SubjectPayoutRequested = "payout.requested"
	SubjectPayoutCompleted = "payout.completed"
	SubjectPayoutFailed    = "payout.failed"
	SubjectPayoutAll       = "payout.>"

	// Rider events
	SubjectRiderLocation = "rider.location"
	SubjectRiderStatus   = "rider.status"
)

// StreamSubjects are persisted by the rider events stream
var StreamSubjects = []string{SubjectTaskAll, SubjectPayoutAll}
