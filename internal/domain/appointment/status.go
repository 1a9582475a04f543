package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// DefaultStatus is what a new appointment gets when the caller does not
// say otherwise. Walk-in clinic flow: the visit is usually recorded
// after the fact, already done.
func DefaultStatus() Status {
	return StatusCompleted
}
