package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/equintero/jobboard-api/internal/jobboard"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	offers       *jobboard.OfferService
	applications *jobboard.ApplicationService
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(offers *jobboard.OfferService, applications *jobboard.ApplicationService, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		offers:       offers,
		applications: applications,
		validator:    validator.New(),
		logger:       logger,
	}
}

// Health handles GET /health requests.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListJobOffers handles GET /api/joboffers requests.
func (h *Handlers) ListJobOffers(w http.ResponseWriter, r *http.Request) {
	resp := h.offers.GetAll(r.Context())
	writeEnvelope(w, http.StatusOK, resp)
}

// GetJobOffer handles GET /api/joboffers/{id} requests.
func (h *Handlers) GetJobOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	resp := h.offers.GetByID(r.Context(), id)
	writeEnvelope(w, http.StatusOK, resp)
}

// CreateJobOffer handles POST /api/joboffers requests.
func (h *Handlers) CreateJobOffer(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[JobOfferRequest](h, w, r)
	if !ok {
		return
	}

	resp := h.offers.Add(r.Context(), jobboard.CreateJobOffer{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Salary:       req.Salary,
		ContractType: req.ContractType,
	})
	writeEnvelope(w, http.StatusCreated, resp)
}

// UpdateJobOffer handles PUT /api/joboffers/{id} requests.
func (h *Handlers) UpdateJobOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeValid[JobOfferRequest](h, w, r)
	if !ok {
		return
	}

	resp := h.offers.Update(r.Context(), id, jobboard.UpdateJobOffer{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Salary:       req.Salary,
		ContractType: req.ContractType,
	})
	writeEnvelope(w, http.StatusOK, resp)
}

// DeleteJobOffer handles DELETE /api/joboffers/{id} requests.
func (h *Handlers) DeleteJobOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	resp := h.offers.Delete(r.Context(), id)
	writeEnvelope(w, http.StatusOK, resp)
}

// ListOfferApplications handles GET /api/joboffers/{id}/applications
// requests.
func (h *Handlers) ListOfferApplications(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	resp := h.offers.ApplicationsByOfferID(r.Context(), id)
	writeEnvelope(w, http.StatusOK, resp)
}

// ListJobApplications handles GET /api/jobapplications requests.
func (h *Handlers) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	resp := h.applications.GetAll(r.Context())
	writeEnvelope(w, http.StatusOK, resp)
}

// GetJobApplication handles GET /api/jobapplications/{id} requests.
func (h *Handlers) GetJobApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	resp := h.applications.GetByID(r.Context(), id)
	writeEnvelope(w, http.StatusOK, resp)
}

// CreateJobApplication handles POST /api/jobapplications requests.
func (h *Handlers) CreateJobApplication(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeValid[JobApplicationRequest](h, w, r)
	if !ok {
		return
	}

	resp := h.applications.Add(r.Context(), jobboard.CreateJobApplication{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		JobOfferID:     req.JobOfferID,
	})
	writeEnvelope(w, http.StatusCreated, resp)
}

// DeleteJobApplication handles DELETE /api/jobapplications/{id} requests.
func (h *Handlers) DeleteJobApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	resp := h.applications.Delete(r.Context(), id)
	writeEnvelope(w, http.StatusOK, resp)
}

// pathID parses the {id} path segment. A non-numeric id gets a 400 failure
// envelope.
func (h *Handlers) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Warn("invalid id in path", slog.String("id", raw))
		writeFailure(w, http.StatusBadRequest, "id must be a number")
		return 0, false
	}
	return id, true
}

// decodeValid decodes and validates a JSON request body. Failures are
// answered with a 400 failure envelope.
func decodeValid[T any](h *Handlers, w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode request body",
			slog.String("error", err.Error()),
		)
		writeFailure(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Warn("request validation failed",
			slog.String("error", err.Error()),
		)
		writeFailure(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

// statusFor maps a failure kind to the HTTP status code; success keeps the
// status the handler asked for.
func statusFor(kind jobboard.FailureKind, successStatus int) int {
	switch kind {
	case jobboard.FailureNotFound:
		return http.StatusNotFound
	case jobboard.FailureInvalidReference:
		return http.StatusUnprocessableEntity
	case jobboard.FailureInternal:
		return http.StatusInternalServerError
	default:
		return successStatus
	}
}

// writeEnvelope writes a service envelope with the status derived from its
// failure kind.
func writeEnvelope[T any](w http.ResponseWriter, successStatus int, resp jobboard.Response[T]) {
	writeJSON(w, statusFor(resp.Kind(), successStatus), resp)
}

// writeFailure writes a boundary-level failure in the same envelope shape
// the services use.
func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, jobboard.Response[any]{Message: message})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}
