package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dudhwalekaran/voltvault-sub000/internal/config"
	domain "github.com/dudhwalekaran/voltvault-sub000/internal/domain/moderation"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httperr"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httpresp"
	"github.com/dudhwalekaran/voltvault-sub000/internal/middleware"
	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
	ucSubmission "github.com/dudhwalekaran/voltvault-sub000/internal/usecase/submission"
)

// ======================================================
// HANDLER
// ======================================================

type RequestHandler struct {
	db  *gorm.DB
	cfg *config.Config

	moderateUC *ucSubmission.Moderate
}

func NewRequestHandler(
	db *gorm.DB,
	cfg *config.Config,
	moderateUC *ucSubmission.Moderate,
) *RequestHandler {
	return &RequestHandler{
		db:         db,
		cfg:        cfg,
		moderateUC: moderateUC,
	}
}

// ======================================================
// MODERATION
// ======================================================

func (h *RequestHandler) Approve(c *gin.Context) {
	h.moderate(c, domain.DecisionApproved)
}

func (h *RequestHandler) Reject(c *gin.Context) {
	h.moderate(c, domain.DecisionRejected)
}

func (h *RequestHandler) moderate(c *gin.Context, decision domain.Decision) {
	principal := middleware.PrincipalFrom(c)

	result, err := h.moderateUC.Execute(c.Request.Context(), ucSubmission.ModerateInput{
		Principal: principal,
		RequestID: c.Param("id"),
		Decision:  decision,
	})
	if err != nil {
		if httperr.Business(c, err) {
			return
		}
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to moderate request.", err, h.cfg.Debug)
		return
	}

	if result.Record != nil {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Request approved.",
			"request": result.Request,
			"record":  result.Record,
		})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Request rejected.",
		"request": result.Request,
	})
}

// ======================================================
// LIST / GET / DELETE
// ======================================================

func (h *RequestHandler) List(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if !principal.IsAdmin() {
		httperr.Forbidden(c, "unauthorized", "Admin access required.")
		return
	}

	status := c.Query("status")
	dataType := c.Query("data_type")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	q := h.db.Model(&models.PendingRequest{})

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if dataType != "" {
		q = q.Where("data_type = ?", dataType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to count requests.", err, h.cfg.Debug)
		return
	}

	var requests []models.PendingRequest
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error; err != nil {

		httperr.WriteErr(c, 500, "persistence_failure", "Failed to list requests.", err, h.cfg.Debug)
		return
	}

	httpresp.List(c, "requests", requests, total, page, limit)
}

func (h *RequestHandler) Get(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if !principal.IsAdmin() {
		httperr.Forbidden(c, "unauthorized", "Admin access required.")
		return
	}

	var req models.PendingRequest
	if err := h.db.First(&req, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Request not found.")
			return
		}
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to get request.", err, h.cfg.Debug)
		return
	}

	httpresp.OK(c, "request", &req)
}

// Delete removes a queue entry in any status. Pure queue pruning: the
// record store and history are untouched.
func (h *RequestHandler) Delete(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if !principal.IsAdmin() {
		httperr.Forbidden(c, "unauthorized", "Admin access required.")
		return
	}

	res := h.db.Delete(&models.PendingRequest{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to delete request.", res.Error, h.cfg.Debug)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "not_found", "Request not found.")
		return
	}

	httpresp.OKMessage(c, "Request deleted.")
}
