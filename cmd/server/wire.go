// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"log"

	"farway_backend/internal/app"
	"farway_backend/internal/auth"
	"farway_backend/internal/config"
	"farway_backend/internal/connection"
	"farway_backend/internal/filestorage"
	"farway_backend/internal/firebase"
	"farway_backend/internal/jobs"
	"farway_backend/internal/notification"
	"farway_backend/internal/platform/database"
	"farway_backend/internal/platform/logger"
	"farway_backend/internal/shared"
	"farway_backend/internal/user"

	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,
		provideCleanup,

		// Identity Provider
		firebase.NewService,
		wire.Bind(new(auth.IdentityProvider), new(*firebase.Service)),

		// Tokens
		auth.NewJWTService,

		// User Directory
		provideFileStorage,
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(user.Service), new(*user.ServiceImplementation)),
		wire.Bind(new(shared.Directory), new(*user.ServiceImplementation)),
		user.NewHandler,

		// Auth
		auth.NewService,
		wire.Bind(new(auth.Service), new(*auth.ServiceImplementation)),
		auth.NewHandler,

		// Notifications
		notification.NewGORMRepository,
		notification.NewService,
		wire.Bind(new(notification.Service), new(*notification.ServiceImplementation)),
		notification.NewHandler,

		// Connections
		connection.NewGORMRepository,
		connection.NewProjector,
		connection.NewService,
		wire.Bind(new(connection.Service), new(*connection.ServiceImplementation)),
		connection.NewHandler,

		// Jobs
		jobs.NewPendingReminderJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}

func provideFileStorage(cfg *config.Config, appLogger *zap.Logger) (*filestorage.Service, error) {
	return filestorage.NewService(cfg.ImageStoragePath, cfg.ImagePublicBaseURL, appLogger)
}

func provideCleanup(appLogger *zap.Logger, db *gorm.DB) func() {
	return func() {
		appLogger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db)
		if err := appLogger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
		log.Println("Cleanup finished.")
	}
}
