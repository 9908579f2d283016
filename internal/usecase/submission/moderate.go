package submission

import (
	"context"
	"fmt"

	"github.com/dudhwalekaran/voltvault-sub000/internal/audit"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/catalog"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/identity"
	domain "github.com/dudhwalekaran/voltvault-sub000/internal/domain/moderation"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httperr"
	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
)

type ModerateInput struct {
	Principal identity.Principal
	RequestID string
	Decision  domain.Decision
}

type ModerateResult struct {
	Request *models.PendingRequest
	// Record is set only when the decision was approval.
	Record *models.Record
}

type Moderate struct {
	types *catalog.Registry
	repo  domain.Repository
	sink  audit.Sink
}

func NewModerate(
	types *catalog.Registry,
	repo domain.Repository,
	sink audit.Sink,
) *Moderate {
	return &Moderate{
		types: types,
		repo:  repo,
		sink:  sink,
	}
}

// Execute applies an admin verdict to a pending request. The pending ->
// decided transition is a conditional update in the store, so a request
// already decided (or decided concurrently) comes back as a conflict and is
// never re-applied.
func (uc *Moderate) Execute(
	ctx context.Context,
	in ModerateInput,
) (*ModerateResult, error) {

	if !in.Principal.IsAdmin() {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	req, err := uc.repo.GetPendingRequest(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanDecide(domain.Status(req.Status)); err != nil {
		return nil, err
	}

	switch in.Decision {

	case domain.DecisionApproved:
		t, ok := uc.types.Resolve(req.DataType)
		if !ok {
			// A queue entry for a type no longer in the catalog cannot
			// be applied.
			return nil, httperr.ErrBusiness("invalid_data_type")
		}

		rec, err := uc.repo.ApproveAndApply(ctx, req, in.Principal.UserID)
		if err != nil {
			return nil, err
		}

		if err := uc.sink.Record(ctx, audit.Entry{
			Action:     "create",
			DataType:   t.Label,
			RecordID:   rec.ID,
			AdminEmail: in.Principal.Email,
			AdminName:  in.Principal.Name,
			Details:    fmt.Sprintf("Approved pending request from %s", req.Username),
		}); err != nil {
			return nil, err
		}

		return &ModerateResult{Request: req, Record: rec}, nil

	case domain.DecisionRejected:
		// Rejections mutate only the queue entry and are not audited.
		if err := uc.repo.Reject(ctx, req, in.Principal.UserID); err != nil {
			return nil, err
		}

		return &ModerateResult{Request: req}, nil

	default:
		return nil, httperr.ErrBusiness("invalid_request")
	}
}
