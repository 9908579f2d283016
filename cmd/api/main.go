package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dudhwalekaran/voltvault-sub000/internal/config"
	dbpkg "github.com/dudhwalekaran/voltvault-sub000/internal/db"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/catalog"
	"github.com/dudhwalekaran/voltvault-sub000/internal/middleware"
	"github.com/dudhwalekaran/voltvault-sub000/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	types, err := catalog.New()
	if err != nil {
		log.Fatalf("failed to build equipment catalog: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, types)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
