package api

import "github.com/rpupo63/sleeklegal-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	attorneyHandler    collectionHandler[models.Attorney, models.AttorneyPatch]
	blogPostHandler    collectionHandler[models.BlogPost, models.BlogPostPatch]
	testimonialHandler collectionHandler[models.Testimonial, models.TestimonialPatch]
	contactHandler     contactHandler
	authHandler        authHandler
	imageHandler       imageHandler
	healthHandler      healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// CollectionResponse is the body of every list endpoint
type CollectionResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	// Source is "backend" or "local"
	Source string `json:"source"`
}

// MessageResponse is returned by endpoints without a resource body
type MessageResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}
