package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/dudhwalekaran/voltvault-sub000/internal/domain/moderation"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httperr"
	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
)

type StoreGormRepository struct {
	db *gorm.DB
}

func NewStoreGormRepository(db *gorm.DB) *StoreGormRepository {
	return &StoreGormRepository{db: db}
}

var _ domain.Repository = (*StoreGormRepository)(nil)

// ======================================================
// RECORDS
// ======================================================

func (r *StoreGormRepository) CreateRecord(
	ctx context.Context,
	rec *models.Record,
) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *StoreGormRepository) GetRecord(
	ctx context.Context,
	dataType string,
	id string,
) (*models.Record, error) {
	var rec models.Record
	err := r.db.WithContext(ctx).
		Where("id = ? AND data_type = ?", id, dataType).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}
	return &rec, nil
}

func (r *StoreGormRepository) SaveRecord(
	ctx context.Context,
	rec *models.Record,
) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *StoreGormRepository) DeleteRecord(
	ctx context.Context,
	rec *models.Record,
) error {
	return r.db.WithContext(ctx).Delete(rec).Error
}

// ======================================================
// PENDING REQUESTS
// ======================================================

func (r *StoreGormRepository) CreatePendingRequest(
	ctx context.Context,
	req *models.PendingRequest,
) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *StoreGormRepository) GetPendingRequest(
	ctx context.Context,
	id string,
) (*models.PendingRequest, error) {
	var req models.PendingRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}
	return &req, nil
}

func (r *StoreGormRepository) ApproveAndApply(
	ctx context.Context,
	req *models.PendingRequest,
	reviewerID string,
) (*models.Record, error) {

	now := time.Now()
	rec := &models.Record{
		ID:        uuid.NewString(),
		DataType:  req.DataType,
		Fields:    req.Data,
		CreatedBy: req.SubmittedBy,
		Status:    "approved",
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.decide(tx, req.ID, domain.StatusApproved, reviewerID, now); err != nil {
			return err
		}
		return tx.Create(rec).Error
	})
	if err != nil {
		return nil, err
	}

	req.Status = string(domain.StatusApproved)
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &now
	return rec, nil
}

func (r *StoreGormRepository) Reject(
	ctx context.Context,
	req *models.PendingRequest,
	reviewerID string,
) error {

	now := time.Now()
	if err := r.decide(r.db.WithContext(ctx), req.ID, domain.StatusRejected, reviewerID, now); err != nil {
		return err
	}

	req.Status = string(domain.StatusRejected)
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &now
	return nil
}

// decide performs the guarded pending -> decided transition. Zero rows
// affected means someone else decided first (or the entry is already
// terminal); that surfaces as a conflict, never a silent re-apply.
func (r *StoreGormRepository) decide(
	tx *gorm.DB,
	requestID string,
	to domain.Status,
	reviewerID string,
	at time.Time,
) error {
	res := tx.Model(&models.PendingRequest{}).
		Where("id = ? AND status = ?", requestID, domain.StatusPending).
		Updates(map[string]any{
			"status":      string(to),
			"reviewed_by": reviewerID,
			"reviewed_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("conflict")
	}
	return nil
}
