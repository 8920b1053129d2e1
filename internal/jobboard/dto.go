package jobboard

import "time"

// JobOfferDTO is the transfer shape for a job offer.
type JobOfferDTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Salary       float64   `json:"salary"`
	ContractType string    `json:"contractType"`
	DatePosted   time.Time `json:"datePosted"`
}

// JobApplicationDTO is the transfer shape for a job application.
type JobApplicationDTO struct {
	ID             int64     `json:"id"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	JobOfferID     int64     `json:"jobOfferId"`
	DateApplied    time.Time `json:"dateApplied"`
}

// CreateJobOffer carries the fields for a new offer.
type CreateJobOffer struct {
	Title        string
	Description  string
	Location     string
	Salary       float64
	ContractType string
}

// UpdateJobOffer carries the mutable fields of an existing offer.
// ID and DatePosted cannot be updated.
type UpdateJobOffer struct {
	Title        string
	Description  string
	Location     string
	Salary       float64
	ContractType string
}

// CreateJobApplication carries the fields for a new application.
type CreateJobApplication struct {
	CandidateName  string
	CandidateEmail string
	JobOfferID     int64
}

func mapJobOffer(o *JobOffer) *JobOfferDTO {
	return &JobOfferDTO{
		ID:           o.ID,
		Title:        o.Title,
		Description:  o.Description,
		Location:     o.Location,
		Salary:       o.Salary,
		ContractType: o.ContractType,
		DatePosted:   o.DatePosted,
	}
}

func mapJobOffers(offers []JobOffer) []JobOfferDTO {
	out := make([]JobOfferDTO, 0, len(offers))
	for i := range offers {
		out = append(out, *mapJobOffer(&offers[i]))
	}
	return out
}

func mapJobApplication(a *JobApplication) *JobApplicationDTO {
	return &JobApplicationDTO{
		ID:             a.ID,
		CandidateName:  a.CandidateName,
		CandidateEmail: a.CandidateEmail,
		JobOfferID:     a.JobOfferID,
		DateApplied:    a.DateApplied,
	}
}

func mapJobApplications(apps []JobApplication) []JobApplicationDTO {
	out := make([]JobApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *mapJobApplication(&apps[i]))
	}
	return out
}
