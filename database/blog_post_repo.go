package database

import (
	"github.com/rpupo63/sleeklegal-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	*Table[models.BlogPostRow]
}

// NewBlogPostRepo returns the gateway to the blog_posts table
func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{NewTable[models.BlogPostRow](db, "blog post", "date", "title", "category", "created_at")}
}
