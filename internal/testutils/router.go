package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/handlers"
	"github.com/linskybing/grant-tracker/internal/api/routes"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/storage"
	"gorm.io/gorm"
)

// SetupRouter wires the full API over gormDB the same way cmd/api does.
func SetupRouter(gormDB *gorm.DB, store storage.ObjectStore) (*gin.Engine, *application.Services) {
	gin.SetMode(gin.TestMode)

	repos := repository.NewRepositories(gormDB)
	hub := events.NewHub()
	svc := application.New(repos, nil, store, hub)

	var pinger handlers.Pinger
	if sqlDB, err := gormDB.DB(); err == nil {
		pinger = sqlDB
	}

	r := gin.New()
	routes.RegisterRoutes(r, repos, svc, handlers.New(svc, hub, pinger))
	return r, svc
}
