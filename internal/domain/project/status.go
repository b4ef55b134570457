package project

// ===============================
// Project Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusActive, StatusInProgress,
		StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition is defined out of s.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsOrderly reports whether from -> to follows the documented machine:
// pending -> active -> in_progress -> completed, with cancellation
// allowed from active/in_progress. The store applies transitions
// permissively; out-of-order moves are logged, not rejected.
func IsOrderly(from, to Status) bool {
	if IsTerminal(from) {
		return false
	}
	switch to {
	case StatusActive:
		return from == StatusPending
	case StatusInProgress:
		return from == StatusActive
	case StatusCompleted:
		return from == StatusInProgress
	case StatusCancelled:
		return from == StatusActive || from == StatusInProgress
	}
	return false
}
