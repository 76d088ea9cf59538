package models

import (
	"time"
)

// DateLayout is the layout of BlogPost.Date
const DateLayout = "2006-01-02"

// BlogPost is the application shape of a blog post
type BlogPost struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Excerpt   string     `json:"excerpt"`
	Author    string     `json:"author"`
	Date      string     `json:"date"`
	Category  string     `json:"category"`
	ImageURL  string     `json:"imageUrl"`
	Featured  *bool      `json:"featured,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// BlogPostRow is a row of the blog_posts table as stored by the backend
type BlogPostRow struct {
	ID        string     `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string     `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string     `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt   string     `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Author    string     `json:"author" db:"author" gorm:"type:text;not null"`
	Date      string     `json:"date" db:"date" gorm:"type:text;not null;index"`
	Category  string     `json:"category" db:"category" gorm:"type:text;not null"`
	ImageURL  string     `json:"image_url" db:"image_url" gorm:"column:image_url;type:text;not null"`
	Featured  *bool      `json:"featured,omitempty" db:"featured" gorm:"type:boolean"`
	CreatedAt *time.Time `json:"created_at,omitempty" db:"created_at" gorm:"type:timestamp;not null"`
}

func (BlogPostRow) TableName() string {
	return "blog_posts"
}

// WithIdentity returns a copy of the row carrying a server-assigned id and creation time
func (r BlogPostRow) WithIdentity(id string, createdAt time.Time) BlogPostRow {
	r.ID = id
	r.CreatedAt = &createdAt
	return r
}

// Validate reports the first required column left empty
func (r BlogPostRow) Validate() error {
	if err := requireFields(
		field{"title", r.Title},
		field{"content", r.Content},
		field{"excerpt", r.Excerpt},
		field{"author", r.Author},
		field{"date", r.Date},
		field{"category", r.Category},
	); err != nil {
		return err
	}
	return validateDate(r.Date)
}

// WithDefaults fills in the publication date when it was omitted
func (p BlogPost) WithDefaults(now time.Time) BlogPost {
	if p.Date == "" {
		p.Date = now.Format(DateLayout)
	}
	return p
}

// BlogPostPatch is a partial blog post update. Nil fields are left unchanged.
type BlogPostPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Author   *string `json:"author,omitempty"`
	Date     *string `json:"date,omitempty"`
	Category *string `json:"category,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
}

// Validate rejects patches that would blank out a required field or carry a bad date
func (p BlogPostPatch) Validate() error {
	if err := rejectBlank(
		optField{"title", p.Title},
		optField{"content", p.Content},
		optField{"excerpt", p.Excerpt},
		optField{"author", p.Author},
		optField{"category", p.Category},
	); err != nil {
		return err
	}
	if p.Date != nil {
		return validateDate(*p.Date)
	}
	return nil
}

// Apply merges the patch into b, leaving id and created_at untouched
func (p BlogPostPatch) Apply(b BlogPost) BlogPost {
	setString(&b.Title, p.Title)
	setString(&b.Content, p.Content)
	setString(&b.Excerpt, p.Excerpt)
	setString(&b.Author, p.Author)
	setString(&b.Date, p.Date)
	setString(&b.Category, p.Category)
	setString(&b.ImageURL, p.ImageURL)
	if p.Featured != nil {
		featured := *p.Featured
		b.Featured = &featured
	}
	return b
}

// Columns returns the partial wire record for the patch, keyed by column name
func (p BlogPostPatch) Columns() map[string]any {
	cols := make(map[string]any)
	putString(cols, "title", p.Title)
	putString(cols, "content", p.Content)
	putString(cols, "excerpt", p.Excerpt)
	putString(cols, "author", p.Author)
	putString(cols, "date", p.Date)
	putString(cols, "category", p.Category)
	putString(cols, "image_url", p.ImageURL)
	if p.Featured != nil {
		cols["featured"] = *p.Featured
	}
	return cols
}

// BlogPostToRow converts a blog post to its wire shape
func BlogPostToRow(b BlogPost) BlogPostRow {
	return BlogPostRow{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Excerpt:   b.Excerpt,
		Author:    b.Author,
		Date:      b.Date,
		Category:  b.Category,
		ImageURL:  b.ImageURL,
		Featured:  b.Featured,
		CreatedAt: b.CreatedAt,
	}
}

// BlogPostFromRow converts a stored row to the application shape
func BlogPostFromRow(r BlogPostRow) BlogPost {
	return BlogPost{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Author:    r.Author,
		Date:      r.Date,
		Category:  r.Category,
		ImageURL:  r.ImageURL,
		Featured:  r.Featured,
		CreatedAt: r.CreatedAt,
	}
}
