package constants

// NATS subjects
const (
	// SubjectProfileReconcile carries profile reconciliation events from the
	// auth service to the profiles worker.
	SubjectProfileReconcile = "profiles.reconcile"

	// QueueProfilesWorker is the queue group for reconciliation consumers so
	// horizontally scaled workers share the subject.
	QueueProfilesWorker = "profiles-worker"
)
