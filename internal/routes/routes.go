package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dudhwalekaran/voltvault-sub000/internal/audit"
	"github.com/dudhwalekaran/voltvault-sub000/internal/config"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/catalog"
	"github.com/dudhwalekaran/voltvault-sub000/internal/handlers"
	infraRepo "github.com/dudhwalekaran/voltvault-sub000/internal/infra/repository"
	"github.com/dudhwalekaran/voltvault-sub000/internal/middleware"
	ucSubmission "github.com/dudhwalekaran/voltvault-sub000/internal/usecase/submission"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, types *catalog.Registry) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	storeRepo := infraRepo.NewStoreGormRepository(db)
	auditSink := audit.NewSink(db, cfg.AuditStrict)

	// ======================================================
	// USE CASES — SUBMISSION GATE
	// ======================================================
	createUC := ucSubmission.NewSubmitCreate(types, storeRepo, auditSink)
	updateUC := ucSubmission.NewSubmitUpdate(types, storeRepo, auditSink)
	deleteUC := ucSubmission.NewSubmitDelete(types, storeRepo, auditSink)
	moderateUC := ucSubmission.NewModerate(types, storeRepo, auditSink)

	// ======================================================
	// HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler()
	recordHandler := handlers.NewRecordHandler(db, cfg, types, createUC, updateUC, deleteUC)
	requestHandler := handlers.NewRequestHandler(db, cfg, moderateUC)
	historyHandler := handlers.NewHistoryHandler(db, cfg)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// EQUIPMENT RECORDS
		// ------------------------------
		api.GET("/records/:type", recordHandler.List)
		api.GET("/records/:type/:id", recordHandler.Get)
		api.POST("/records/:type", recordHandler.Create)
		api.PATCH("/records/:type/:id", recordHandler.Update)
		api.DELETE("/records/:type/:id", recordHandler.Delete)

		// ------------------------------
		// PENDING REQUESTS
		// ------------------------------
		api.GET("/requests", requestHandler.List)
		api.GET("/requests/:id", requestHandler.Get)
		api.PATCH("/requests/:id/approve", requestHandler.Approve)
		api.PATCH("/requests/:id/reject", requestHandler.Reject)
		api.DELETE("/requests/:id", requestHandler.Delete)

		// ------------------------------
		// HISTORY
		// ------------------------------
		api.GET("/history", historyHandler.List)
		api.DELETE("/history/:id", historyHandler.Delete)
	}
}
