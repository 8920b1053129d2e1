// Package server provides the HTTP server for the job board API.
// It includes handlers, middleware, routes, and request DTOs separated from
// domain types. Handlers write the service response envelope verbatim; only
// the status code is chosen at this boundary.
package server

// JobOfferRequest is the HTTP request body for creating or updating a job
// offer.
type JobOfferRequest struct {
	// Title of the opening, at least 5 characters.
	Title string `json:"title" validate:"required,min=5"`
	// Description of the role, at least 5 characters.
	Description string `json:"description" validate:"required,min=5"`
	// Location where the role is based, at least 5 characters.
	Location string `json:"location" validate:"required,min=5"`
	// Salary offered, at least 1.
	Salary float64 `json:"salary" validate:"required,gte=1"`
	// ContractType, at least 5 characters, e.g. "Full time".
	ContractType string `json:"contractType" validate:"required,min=5"`
}

// JobApplicationRequest is the HTTP request body for creating a job
// application.
type JobApplicationRequest struct {
	// CandidateName is the applicant's full name.
	CandidateName string `json:"candidateName" validate:"required"`
	// CandidateEmail must be a syntactically valid address.
	CandidateEmail string `json:"candidateEmail" validate:"required,email"`
	// JobOfferID references the offer being applied to.
	JobOfferID int64 `json:"jobOfferId" validate:"required,gt=0"`
}

// HealthResponse is the HTTP response for the health check endpoint.
type HealthResponse struct {
	// Status is the health status of the service.
	Status string `json:"status"`
}
