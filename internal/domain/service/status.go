package service

// Status is the approval state of a service.
// Flow: created -> assigned -> approved | rejected. Approved and rejected are
// terminal: a terminal service can no longer be changed.
type Status string

const (
	StatusCreated  Status = "created"
	StatusAssigned Status = "assigned"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid checks enum membership.
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusAssigned, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status is approved or rejected. A service in
// a terminal status counts as validated for the agreement revised-flag gate.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}
