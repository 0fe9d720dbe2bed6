package db

import (
	"github.com/linskybing/grant-tracker/internal/config"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/transaction"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the configured PostgreSQL database.
func Init(log *zap.Logger) {
	var err error
	DB, err = gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB", zap.Error(err))
	}
	log.Info("Database connected", zap.String("host", config.DbHost), zap.String("name", config.DbName))
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&user.User{},
		&user.UserProfile{},
		&grant.Grant{},
		&grant.Topic{},
		&transaction.Cluster{},
		&ticket.Ticket{},
		&ticket.MediaInfo{},
		&ticket.Expediture{},
		&ticket.TicketAck{},
		&ticket.Document{},
		&transaction.Transaction{},
		&audit.AuditLog{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
