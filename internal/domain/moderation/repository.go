package moderation

import (
	"context"

	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
)

type Repository interface {
	// -------- Record --------
	CreateRecord(
		ctx context.Context,
		rec *models.Record,
	) error

	GetRecord(
		ctx context.Context,
		dataType string,
		id string,
	) (*models.Record, error)

	SaveRecord(
		ctx context.Context,
		rec *models.Record,
	) error

	DeleteRecord(
		ctx context.Context,
		rec *models.Record,
	) error

	// -------- Pending request --------
	CreatePendingRequest(
		ctx context.Context,
		req *models.PendingRequest,
	) error

	GetPendingRequest(
		ctx context.Context,
		id string,
	) (*models.PendingRequest, error)

	// ApproveAndApply atomically moves the request out of pending and
	// creates the record from its stored payload. A request that is no
	// longer pending (including one lost to a concurrent decision) yields
	// a conflict business error and no record.
	ApproveAndApply(
		ctx context.Context,
		req *models.PendingRequest,
		reviewerID string,
	) (*models.Record, error)

	// Reject atomically moves the request from pending to rejected. Same
	// conflict semantics as ApproveAndApply; no record is touched.
	Reject(
		ctx context.Context,
		req *models.PendingRequest,
		reviewerID string,
	) error
}
