package domain

import "fmt"

// ApplicationStatus is the review state of a submitted application. The set
// is closed: no other value is ever legal. Transitions are unordered; any
// status may move to any other, including back to pending. The only way
// out of the graph is deletion.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Statuses lists every legal status, in the order reviewers see them.
var Statuses = []ApplicationStatus{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

// ParseStatus validates a raw string against the closed enumeration.
// Callers must invoke this before any entity lookup so that bogus values
// fail fast as validation errors, not not-found errors.
func ParseStatus(raw string) (ApplicationStatus, error) {
	s := ApplicationStatus(raw)
	for _, valid := range Statuses {
		if s == valid {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of: pending, reviewed, accepted, rejected)", ErrInvalidStatus, raw)
}
