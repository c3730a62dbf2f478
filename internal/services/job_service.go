package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobfinder/search-service/internal/dtos"
	"jobfinder/search-service/internal/jsearch"
	"jobfinder/search-service/internal/models"
)

// sourceName tags every record with the upstream provider.
const sourceName = "jsearch"

// Searcher is the single upstream call the job service depends on. The
// jsearch client satisfies it; tests substitute a stub.
type Searcher interface {
	Search(ctx context.Context, query string, page int) ([]jsearch.JobItem, error)
}

// JobService turns a search request into normalized Job records.
type JobService struct {
	upstream Searcher
	logger   *zap.Logger
}

func NewJobService(upstream Searcher, logger *zap.Logger) *JobService {
	return &JobService{
		upstream: upstream,
		logger:   logger,
	}
}

// Search issues one upstream query and maps the result. It never fails:
// rate limits and transport errors from JSearch collapse to an empty slice
// so a transient upstream hiccup shows the caller "no jobs" instead of
// breaking the frontend. That trade-off is deliberate; the warn log below
// is what keeps the two cases distinguishable for operators.
func (s *JobService) Search(ctx context.Context, req *dtos.JobSearchRequest) []models.Job {
	query := fmt.Sprintf("%s in India", req.Role)
	if req.City != "" {
		query = fmt.Sprintf("%s in %s, India", req.Role, req.City)
	}

	items, err := s.upstream.Search(ctx, query, req.Page)
	if err != nil {
		if errors.Is(err, jsearch.ErrRateLimited) {
			s.logger.Warn("jsearch rate limit hit, returning empty result",
				zap.String("query", query))
		} else {
			s.logger.Warn("jsearch request failed, returning empty result",
				zap.String("query", query), zap.Error(err))
		}
		return []models.Job{}
	}

	if len(items) > req.Size {
		items = items[:req.Size]
	}

	jobs := make([]models.Job, 0, len(items))
	for _, item := range items {
		jobs = append(jobs, normalize(item, req))
	}
	return jobs
}

// normalize maps one upstream item to the output schema. The estimator gets
// the request's experience bounds, not anything inferred per item, and the
// full location string so tier matching sees state suffixes too.
func normalize(item jsearch.JobItem, req *dtos.JobSearchRequest) models.Job {
	title := item.Title
	if title == "" {
		title = "Unknown"
	}

	rawCity := item.City
	if rawCity == "" {
		rawCity = item.Location
	}

	salaryMin := toIntPtr(item.MinSalary)
	salaryMax := toIntPtr(item.MaxSalary)

	currency := item.SalaryCurrency
	if currency == "" {
		currency = "INR"
	}

	estMin, estMax := EstimateSalaryINR(title, rawCity, req.ExpMin, req.ExpMax, salaryMin, salaryMax)

	job := models.Job{
		Title:          title,
		Company:        strPtr(item.EmployerName),
		ExpMin:         req.ExpMin,
		ExpMax:         req.ExpMax,
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		SalaryCurrency: currency,
		SalaryEstMin:   estMin,
		SalaryEstMax:   estMax,
		PostedAt:       parsePostedAt(item.PostedAt, item.OfferExpiration),
		Source:         sourceName,
		ApplyURL:       firstNonEmptyPtr(item.ApplyLink, item.GoogleLink),
	}
	if rawCity != "" {
		job.Location = &rawCity
		city := strings.TrimSpace(strings.SplitN(rawCity, ",", 2)[0])
		job.City = &city
	}
	return job
}

// parsePostedAt best-effort parses the first non-empty candidate timestamp.
// RFC3339 accepts both "Z" and explicit offsets; a second layout covers
// timestamps without a zone. Failures yield nil, never an error — a bad
// timestamp must not drop the record.
func parsePostedAt(candidates ...string) *time.Time {
	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return &t
		}
		if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
			return &t
		}
		return nil
	}
	return nil
}

func toIntPtr(f *float64) *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func firstNonEmptyPtr(values ...string) *string {
	for _, v := range values {
		if v != "" {
			return &v
		}
	}
	return nil
}
