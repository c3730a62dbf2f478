package models

import "time"

// Job is the normalized job record returned to clients. Optional fields are
// pointers so that absent upstream data serializes as JSON null rather than
// a zero value. A Job is built fresh per request and never mutated after
// construction.
type Job struct {
	Title          string     `json:"title"`
	Company        *string    `json:"company"`
	City           *string    `json:"city"`     // first comma segment of Location
	Location       *string    `json:"location"` // full upstream location string
	ExpMin         *int       `json:"exp_min"`
	ExpMax         *int       `json:"exp_max"`
	SalaryMin      *int       `json:"salary_min"`
	SalaryMax      *int       `json:"salary_max"`
	SalaryCurrency string     `json:"salary_currency"`
	SalaryEstMin   *int       `json:"salary_est_min"` // nil whenever SalaryMin/SalaryMax is reported
	SalaryEstMax   *int       `json:"salary_est_max"`
	PostedAt       *time.Time `json:"posted_at"`
	Source         string     `json:"source"`
	ApplyURL       *string    `json:"apply_url"`
}
