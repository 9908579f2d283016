package moderation

import (
	"testing"

	"github.com/dudhwalekaran/voltvault-sub000/internal/httperr"
)

func TestCanDecidePending(t *testing.T) {
	if err := CanDecide(StatusPending); err != nil {
		t.Fatalf("expected pending to be decidable, got %v", err)
	}
}

func TestCanDecideTerminalStates(t *testing.T) {
	for _, s := range []Status{StatusApproved, StatusRejected} {
		err := CanDecide(s)
		if err == nil {
			t.Fatalf("expected %s to be terminal", s)
		}
		if !httperr.IsBusiness(err, "conflict") {
			t.Errorf("expected conflict for %s, got %v", s, err)
		}
	}
}

func TestDecisionStatus(t *testing.T) {
	if DecisionApproved.Status() != StatusApproved {
		t.Errorf("approved decision should map to approved status")
	}
	if DecisionRejected.Status() != StatusRejected {
		t.Errorf("rejected decision should map to rejected status")
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Errorf("new requests must start pending")
	}
}
