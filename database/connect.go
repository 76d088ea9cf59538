package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/sleeklegal-backend/config"
	"github.com/rpupo63/sleeklegal-backend/errs"
)

// ConnectionConfig describes the hosted Postgres backend
type ConnectionConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string

	// ReplicaDSN routes reads to a replica when set
	ReplicaDSN string
	// SimpleProtocol is needed behind transaction-mode poolers
	SimpleProtocol bool
	SlowThreshold  time.Duration
}

// ConnectionConfigFromEnv reads the SUPABASE_DB_* keys
func ConnectionConfigFromEnv(c map[string]string) ConnectionConfig {
	return ConnectionConfig{
		Host:           config.GetString(c, "SUPABASE_DB_HOST", ""),
		User:           config.GetString(c, "SUPABASE_DB_USER", ""),
		Password:       config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
		Name:           config.GetString(c, "SUPABASE_DB_NAME", ""),
		Port:           config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		SSLMode:        config.GetString(c, "SUPABASE_DB_SSLMODE", "require"),
		ReplicaDSN:     config.GetString(c, "DB_REPLICA_DSN", ""),
		SimpleProtocol: config.GetBool(c, "DB_SIMPLE_PROTOCOL", false),
		SlowThreshold:  config.GetDuration(c, "DB_SLOW_THRESHOLD_MS", 2000*time.Millisecond),
	}
}

// Configured reports whether enough settings are present to attempt a connection
func (c ConnectionConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Name != ""
}

func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// Open returns a handle to the backend. It does not dial: an unreachable
// backend surfaces on the first query, not here.
func Open(c ConnectionConfig) (*gorm.DB, error) {
	if !c.Configured() {
		return nil, errs.NewConfigMissingError("database")
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             c.SlowThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  c.DSN(),
		PreferSimpleProtocol: c.SimpleProtocol,
	}), &gorm.Config{
		Logger:               newLogger,
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, errs.NewDatabaseError("open", "database", err)
	}

	if c.ReplicaDSN != "" {
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  c.ReplicaDSN,
				PreferSimpleProtocol: c.SimpleProtocol,
			})},
			Policy: dbresolver.RandomPolicy{},
		})
		if err := db.Use(resolver); err != nil {
			return nil, errs.NewDatabaseError("register replica for", "database", err)
		}
	}

	return db, nil
}
