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

type SubmitDelete struct {
	types *catalog.Registry
	repo  domain.Repository
	sink  audit.Sink
}

func NewSubmitDelete(
	types *catalog.Registry,
	repo domain.Repository,
	sink audit.Sink,
) *SubmitDelete {
	return &SubmitDelete{
		types: types,
		repo:  repo,
		sink:  sink,
	}
}

// Execute removes a record. Like updates, deletes are admin-only; there is
// no queued-delete path. History entries referencing the record survive it.
func (uc *SubmitDelete) Execute(
	ctx context.Context,
	principal identity.Principal,
	dataType string,
	recordID string,
) (*models.Record, error) {

	t, ok := uc.types.Resolve(dataType)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_data_type")
	}

	if !principal.IsAdmin() {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	rec, err := uc.repo.GetRecord(ctx, t.Slug, recordID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteRecord(ctx, rec); err != nil {
		return nil, err
	}

	if err := uc.sink.Record(ctx, audit.Entry{
		Action:     "delete",
		DataType:   t.Label,
		RecordID:   rec.ID,
		AdminEmail: principal.Email,
		AdminName:  principal.Name,
		Details:    fmt.Sprintf("Deleted %s", t.Label),
	}); err != nil {
		return nil, err
	}

	return rec, nil
}
