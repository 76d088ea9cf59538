package content

import (
	"strings"
	"time"

	"github.com/rpupo63/sleeklegal-backend/models"
)

type BlogPosts = Provider[models.BlogPost, models.BlogPostPatch]

// BlogPostCollection describes blog posts. New posts go to the top of the
// list and default to today's date.
func BlogPostCollection() Collection[models.BlogPost, models.BlogPostPatch] {
	return Collection[models.BlogPost, models.BlogPostPatch]{
		Name:   "blog posts",
		Entity: "blog post",
		Label:  "Blog post",
		Seed:   models.SeedBlogPosts,
		ID:     func(b models.BlogPost) string { return b.ID },
		Stamp: func(b models.BlogPost, id string, at time.Time) models.BlogPost {
			b.ID = id
			b.CreatedAt = &at
			return b
		},
		Strip: func(b models.BlogPost) models.BlogPost {
			b.ID = ""
			b.CreatedAt = nil
			return b
		},
		Prepare: func(b models.BlogPost, now time.Time) models.BlogPost {
			return b.WithDefaults(now)
		},
		Validate:      func(b models.BlogPost) error { return models.BlogPostToRow(b).Validate() },
		ValidatePatch: models.BlogPostPatch.Validate,
		Apply: func(b models.BlogPost, p models.BlogPostPatch) models.BlogPost {
			return p.Apply(b)
		},
		Placement: Prepend,
	}
}

// BlogPostWire maps posts to rows of the blog_posts table, newest first
func BlogPostWire() Wire[models.BlogPost, models.BlogPostPatch, models.BlogPostRow] {
	return Wire[models.BlogPost, models.BlogPostPatch, models.BlogPostRow]{
		ToRow:   models.BlogPostToRow,
		FromRow: models.BlogPostFromRow,
		Columns: models.BlogPostPatch.Columns,
		OrderBy: "-date",
	}
}

func NewBlogPosts(gateway Gateway[models.BlogPostRow], opts ...Option) *BlogPosts {
	return NewProvider(BlogPostCollection(), gateway, BlogPostWire(), opts...)
}

// FilterByCategory returns the posts in category, ignoring case. An empty
// category returns every post.
func FilterByCategory(posts []models.BlogPost, category string) []models.BlogPost {
	if category == "" {
		return posts
	}
	out := make([]models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if strings.EqualFold(post.Category, category) {
			out = append(out, post)
		}
	}
	return out
}
