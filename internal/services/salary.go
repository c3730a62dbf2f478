package services

import "strings"

// Salary estimation is a deterministic heuristic over title, city and
// experience. It only ever runs when the upstream listing carries no salary;
// a reported salary always wins over a guess.

// titleRule maps job-title keywords to assumed years of experience.
// Rules are evaluated top to bottom; the first matching rule wins, so a
// "Senior Engineering Manager" resolves through the senior rule, not the
// manager one.
type titleRule struct {
	keywords []string
	years    int
}

var titleRules = []titleRule{
	{keywords: []string{"intern", "trainee"}, years: 0},
	{keywords: []string{"senior", "sr.", "lead", "architect", "principal"}, years: 7},
	{keywords: []string{"manager", "head", "director"}, years: 10},
}

// defaultYears applies when no keyword rule matches.
const defaultYears = 3

// City tier tables are a cost-of-living proxy. Matching is case-insensitive
// substring containment, so "Pune, Maharashtra" classifies as tier 1.
var (
	tier1Cities = []string{
		"mumbai", "bombay", "bengaluru", "bangalore", "hyderabad", "chennai",
		"pune", "gurugram", "gurgaon", "noida", "delhi", "new delhi",
	}
	tier2Cities = []string{
		"ahmedabad", "jaipur", "indore", "surat", "kochi", "coimbatore", "bhopal",
	}
)

const lakh = 100_000 // INR

// EstimateSalaryINR guesses an annual INR salary range for a listing without
// one. Returns (nil, nil) when the upstream salary is present, meaning a
// non-nil, non-zero min or max. Pure and deterministic: no I/O, no clock.
func EstimateSalaryINR(title, city string, expMin, expMax, salaryMin, salaryMax *int) (*int, *int) {
	if intPresent(salaryMin) || intPresent(salaryMax) {
		return nil, nil
	}

	years := resolveYears(title, expMin, expMax)
	baseMin, baseMax := levelBand(years)
	mult := tierMultiplier(city)

	low := int(baseMin * mult * lakh)
	high := int(baseMax * mult * lakh)
	return &low, &high
}

// resolveYears prefers explicit experience over title keywords. Within the
// explicit branch the chain is exp_max, then exp_min, then 2 — a zero value
// falls through the chain like an absent one.
func resolveYears(title string, expMin, expMax *int) int {
	if expMin != nil || expMax != nil {
		if expMax != nil && *expMax > 0 {
			return *expMax
		}
		if expMin != nil && *expMin > 0 {
			return *expMin
		}
		return 2
	}

	norm := strings.ToLower(title)
	for _, rule := range titleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(norm, kw) {
				return rule.years
			}
		}
	}
	return defaultYears
}

// levelBand buckets years of experience into a tier-1 base range, expressed
// in lakh per annum.
func levelBand(years int) (float64, float64) {
	switch {
	case years <= 2: // junior
		return 4, 8
	case years <= 6: // mid
		return 8, 18
	case years <= 12: // senior
		return 18, 35
	default: // lead
		return 30, 55
	}
}

// tierMultiplier scales the tier-1 base range down for smaller markets.
// Unknown or empty cities classify as tier 3.
func tierMultiplier(city string) float64 {
	norm := strings.ToLower(city)
	if containsAny(norm, tier1Cities) {
		return 1.0
	}
	if containsAny(norm, tier2Cities) {
		return 0.8
	}
	return 0.65
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func intPresent(p *int) bool {
	return p != nil && *p != 0
}
