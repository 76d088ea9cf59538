package database

import (
	"github.com/rpupo63/sleeklegal-backend/models"
	"gorm.io/gorm"
)

type AttorneyRepo struct {
	*Table[models.AttorneyRow]
}

// NewAttorneyRepo returns the gateway to the attorneys table
func NewAttorneyRepo(db *gorm.DB) *AttorneyRepo {
	return &AttorneyRepo{NewTable[models.AttorneyRow](db, "attorney", "name", "specialty", "position", "created_at")}
}
