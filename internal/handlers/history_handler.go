package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dudhwalekaran/voltvault-sub000/internal/config"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httperr"
	"github.com/dudhwalekaran/voltvault-sub000/internal/httpresp"
	"github.com/dudhwalekaran/voltvault-sub000/internal/middleware"
	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type HistoryHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHistoryHandler(db *gorm.DB, cfg *config.Config) *HistoryHandler {
	return &HistoryHandler{db: db, cfg: cfg}
}

func (h *HistoryHandler) List(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if !principal.IsAdmin() {
		httperr.Forbidden(c, "unauthorized", "Admin access required.")
		return
	}

	action := c.Query("action")
	dataType := c.Query("data_type")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	q := h.db.Model(&models.History{})

	if action != "" {
		q = q.Where("action = ?", action)
	}
	if dataType != "" {
		q = q.Where("data_type = ?", dataType)
	}
	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}
	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to count history.", err, h.cfg.Debug)
		return
	}

	var entries []models.History
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {

		httperr.WriteErr(c, 500, "persistence_failure", "Failed to list history.", err, h.cfg.Debug)
		return
	}

	httpresp.List(c, "history", entries, total, page, limit)
}

// Delete prunes a single log row. No cascading effect on records or
// requests.
func (h *HistoryHandler) Delete(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if !principal.IsAdmin() {
		httperr.Forbidden(c, "unauthorized", "Admin access required.")
		return
	}

	res := h.db.Delete(&models.History{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		httperr.WriteErr(c, 500, "persistence_failure", "Failed to delete history entry.", res.Error, h.cfg.Debug)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "not_found", "History entry not found.")
		return
	}

	httpresp.OKMessage(c, "History entry deleted.")
}
