package database

import (
	"context"

	"gorm.io/gorm"
)

type Database struct {
	db           *gorm.DB
	attorneyRepo *AttorneyRepo
	blogPostRepo *BlogPostRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance.
// A nil db yields repositories that report themselves unavailable.
func New(db *gorm.DB) Database {
	return Database{
		db:           db,
		attorneyRepo: NewAttorneyRepo(db),
		blogPostRepo: NewBlogPostRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) AttorneyRepo() *AttorneyRepo {
	return d.attorneyRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

// Configured reports whether a database handle was supplied
func (d Database) Configured() bool {
	return d.db != nil
}

// Ping checks that the backend answers
func (d Database) Ping(ctx context.Context) error {
	return d.attorneyRepo.IsReachable(ctx)
}

// Close releases the connection pool
func (d Database) Close() error {
	if d.db == nil {
		return nil
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
