package models

import "github.com/rpupo63/sleeklegal-backend/errs"

// Testimonial is a client testimonial. Testimonials have no backend table
// and only ever live in memory.
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	CaseType string `json:"caseType,omitempty"`
	Featured *bool  `json:"featured,omitempty"`
}

// Validate checks the required testimonial fields
func (t Testimonial) Validate() error {
	if err := requireFields(
		field{"name", t.Name},
		field{"content", t.Content},
	); err != nil {
		return err
	}
	return validateRating(t.Rating)
}

// TestimonialPatch is a partial testimonial update
type TestimonialPatch struct {
	Name     *string `json:"name,omitempty"`
	Position *string `json:"position,omitempty"`
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	CaseType *string `json:"caseType,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
}

func (p TestimonialPatch) Validate() error {
	if err := rejectBlank(
		optField{"name", p.Name},
		optField{"content", p.Content},
	); err != nil {
		return err
	}
	if p.Rating != nil {
		return validateRating(*p.Rating)
	}
	return nil
}

func (p TestimonialPatch) Apply(t Testimonial) Testimonial {
	setString(&t.Name, p.Name)
	setString(&t.Position, p.Position)
	setString(&t.Content, p.Content)
	setString(&t.ImageURL, p.ImageURL)
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	setString(&t.CaseType, p.CaseType)
	if p.Featured != nil {
		featured := *p.Featured
		t.Featured = &featured
	}
	return t
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errs.NewInvalidFieldError("rating", "must be between 1 and 5")
	}
	return nil
}
