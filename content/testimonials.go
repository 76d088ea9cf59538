package content

import (
	"time"

	"github.com/rpupo63/sleeklegal-backend/models"
)

type Testimonials = Provider[models.Testimonial, models.TestimonialPatch]

// TestimonialCollection describes client testimonials, which have no
// backend table
func TestimonialCollection() Collection[models.Testimonial, models.TestimonialPatch] {
	return Collection[models.Testimonial, models.TestimonialPatch]{
		Name:   "testimonials",
		Entity: "testimonial",
		Label:  "Testimonial",
		Seed:   models.SeedTestimonials,
		ID:     func(t models.Testimonial) string { return t.ID },
		Stamp: func(t models.Testimonial, id string, at time.Time) models.Testimonial {
			t.ID = id
			if t.Date == "" {
				t.Date = at.Format(models.DateLayout)
			}
			return t
		},
		Strip: func(t models.Testimonial) models.Testimonial {
			t.ID = ""
			return t
		},
		Validate:      models.Testimonial.Validate,
		ValidatePatch: models.TestimonialPatch.Validate,
		Apply: func(t models.Testimonial, p models.TestimonialPatch) models.Testimonial {
			return p.Apply(t)
		},
		Placement: Prepend,
	}
}

func NewTestimonials(opts ...Option) *Testimonials {
	return NewLocalProvider(TestimonialCollection(), opts...)
}
