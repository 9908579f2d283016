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
	"github.com/dudhwalekaran/voltvault-sub000/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SubmitCreateInput struct {
	Principal identity.Principal
	DataType  string
	Payload   map[string]any
}

// SubmitCreateResult carries exactly one of the two outcomes: an admin's
// direct write yields a record, a user's submission yields a queue entry.
type SubmitCreateResult struct {
	Record  *models.Record
	Request *models.PendingRequest
}

// ======================================================
// USE CASE
// ======================================================

type SubmitCreate struct {
	types *catalog.Registry
	repo  domain.Repository
	sink  audit.Sink
}

func NewSubmitCreate(
	types *catalog.Registry,
	repo domain.Repository,
	sink audit.Sink,
) *SubmitCreate {
	return &SubmitCreate{
		types: types,
		repo:  repo,
		sink:  sink,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitCreate) Execute(
	ctx context.Context,
	in SubmitCreateInput,
) (*SubmitCreateResult, error) {

	// All validation happens before any write.
	t, ok := uc.types.Resolve(in.DataType)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_data_type")
	}

	if !validators.PayloadComplete(in.Payload) {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	switch in.Principal.Role {

	case identity.RoleAdmin:
		rec := &models.Record{
			DataType:  t.Slug,
			Fields:    in.Payload,
			CreatedBy: in.Principal.UserID,
			Status:    "approved",
		}

		if err := uc.repo.CreateRecord(ctx, rec); err != nil {
			return nil, err
		}

		if err := uc.sink.Record(ctx, audit.Entry{
			Action:     "create",
			DataType:   t.Label,
			RecordID:   rec.ID,
			AdminEmail: in.Principal.Email,
			AdminName:  in.Principal.Name,
			Details:    fmt.Sprintf("Created %s", t.Label),
		}); err != nil {
			return nil, err
		}

		return &SubmitCreateResult{Record: rec}, nil

	case identity.RoleUser:
		req := &models.PendingRequest{
			DataType:    t.Slug,
			Data:        in.Payload,
			SubmittedBy: in.Principal.UserID,
			Username:    in.Principal.Name,
			Email:       in.Principal.Email,
			Description: fmt.Sprintf("New %s submission by %s", t.Label, in.Principal.Name),
			Status:      string(domain.InitialStatus()),
		}

		if err := uc.repo.CreatePendingRequest(ctx, req); err != nil {
			return nil, err
		}

		return &SubmitCreateResult{Request: req}, nil

	default:
		return nil, httperr.ErrBusiness("invalid_role")
	}
}
