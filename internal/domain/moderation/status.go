package moderation

import "github.com/dudhwalekaran/voltvault-sub000/internal/httperr"

// ===============================
// Pending Request Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Decision is an admin's moderation verdict on a pending request.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) Status() Status {
	if d == DecisionApproved {
		return StatusApproved
	}
	return StatusRejected
}

// ===============================
// Validations
// ===============================

// CanDecide allows a verdict only on a request still in pending. Approved
// and rejected are terminal; re-moderation is a conflict, never a re-apply.
func CanDecide(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("conflict")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
