package submission

import (
	"context"

	"github.com/dudhwalekaran/voltvault-sub000/internal/audit"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/catalog"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/identity"
	domain "github.com/dudhwalekaran/voltvault-sub000/internal/domain/moderation"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httperr"
	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
)

type SubmitUpdateInput struct {
	Principal identity.Principal
	DataType  string
	RecordID  string
	Patch     map[string]any
}

type SubmitUpdate struct {
	types *catalog.Registry
	repo  domain.Repository
	sink  audit.Sink
}

func NewSubmitUpdate(
	types *catalog.Registry,
	repo domain.Repository,
	sink audit.Sink,
) *SubmitUpdate {
	return &SubmitUpdate{
		types: types,
		repo:  repo,
		sink:  sink,
	}
}

// Execute applies a partial field update. Edits have no moderation path:
// only admins may update, users are denied outright.
func (uc *SubmitUpdate) Execute(
	ctx context.Context,
	in SubmitUpdateInput,
) (*models.Record, error) {

	t, ok := uc.types.Resolve(in.DataType)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_data_type")
	}

	if !in.Principal.IsAdmin() {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	if len(in.Patch) == 0 {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	rec, err := uc.repo.GetRecord(ctx, t.Slug, in.RecordID)
	if err != nil {
		return nil, err
	}

	// Diff against the state before the patch lands.
	details := fieldDiff(rec.Fields, in.Patch)

	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}
	for k, v := range in.Patch {
		rec.Fields[k] = v
	}

	if err := uc.repo.SaveRecord(ctx, rec); err != nil {
		return nil, err
	}

	if err := uc.sink.Record(ctx, audit.Entry{
		Action:     "update",
		DataType:   t.Label,
		RecordID:   rec.ID,
		AdminEmail: in.Principal.Email,
		AdminName:  in.Principal.Name,
		Details:    details,
	}); err != nil {
		return nil, err
	}

	return rec, nil
}
