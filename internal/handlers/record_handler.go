package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dudhwalekaran/voltvault-sub000/internal/config"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/catalog"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httperr"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httpresp"
	"github.com/dudhwalekaran/voltvault-sub000/internal/middleware"
	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
	ucSubmission "github.com/dudhwalekaran/voltvault-sub000/internal/usecase/submission"
)

// ======================================================
// HANDLER
// ======================================================

type RecordHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	types *catalog.Registry

	createUC *ucSubmission.SubmitCreate
	updateUC *ucSubmission.SubmitUpdate
	deleteUC *ucSubmission.SubmitDelete
}

func NewRecordHandler(
	db *gorm.DB,
	cfg *config.Config,
	types *catalog.Registry,
	createUC *ucSubmission.SubmitCreate,
	updateUC *ucSubmission.SubmitUpdate,
	deleteUC *ucSubmission.SubmitDelete,
) *RecordHandler {
	return &RecordHandler{
		db:       db,
		cfg:      cfg,
		types:    types,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *RecordHandler) Create(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.WriteErr(c, 400, "invalid_request", "Invalid request body.", err, h.cfg.Debug)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), ucSubmission.SubmitCreateInput{
		Principal: principal,
		DataType:  c.Param("type"),
		Payload:   payload,
	})
	if err != nil {
		if httperr.Business(c, err) {
			return
		}
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to create record.", err, h.cfg.Debug)
		return
	}

	if result.Record != nil {
		httpresp.Created(c, "record", result.Record, "Record created.")
		return
	}

	httpresp.Created(c, "request", result.Request, "Submission queued for approval.")
}

// ======================================================
// UPDATE
// ======================================================

func (h *RecordHandler) Update(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.WriteErr(c, 400, "invalid_request", "Invalid request body.", err, h.cfg.Debug)
		return
	}

	rec, err := h.updateUC.Execute(c.Request.Context(), ucSubmission.SubmitUpdateInput{
		Principal: principal,
		DataType:  c.Param("type"),
		RecordID:  c.Param("id"),
		Patch:     patch,
	})
	if err != nil {
		if httperr.Business(c, err) {
			return
		}
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to update record.", err, h.cfg.Debug)
		return
	}

	httpresp.OK(c, "record", rec)
}

// ======================================================
// DELETE
// ======================================================

func (h *RecordHandler) Delete(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	rec, err := h.deleteUC.Execute(
		c.Request.Context(),
		principal,
		c.Param("type"),
		c.Param("id"),
	)
	if err != nil {
		if httperr.Business(c, err) {
			return
		}
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to delete record.", err, h.cfg.Debug)
		return
	}

	httpresp.OK(c, "record", rec)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *RecordHandler) List(c *gin.Context) {
	t, ok := h.types.Resolve(c.Param("type"))
	if !ok {
		httperr.BadRequest(c, "invalid_data_type", "Unknown equipment type.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	q := h.db.Model(&models.Record{}).Where("data_type = ?", t.Slug)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to count records.", err, h.cfg.Debug)
		return
	}

	var records []models.Record
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error; err != nil {

		httperr.WriteErr(c, 500, "persistence_failure", "Failed to list records.", err, h.cfg.Debug)
		return
	}

	httpresp.List(c, "records", records, total, page, limit)
}

func (h *RecordHandler) Get(c *gin.Context) {
	t, ok := h.types.Resolve(c.Param("type"))
	if !ok {
		httperr.BadRequest(c, "invalid_data_type", "Unknown equipment type.")
		return
	}

	var rec models.Record
	if err := h.db.
		Where("id = ? AND data_type = ?", c.Param("id"), t.Slug).
		First(&rec).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Record not found.")
			return
		}
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to get record.", err, h.cfg.Debug)
		return
	}

	httpresp.OK(c, "record", &rec)
}
