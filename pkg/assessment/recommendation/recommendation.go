package recommendation

import (
	"fmt"
	"sort"
	"strings"
)

// Priorities of the category rule used by formal submissions.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Priorities of the domain rule used by the chat summary.
const (
	DomainPriorityHigh   = "High"
	DomainPriorityMedium = "Medium"
	DomainPriorityLow    = "Low"
)

const (
	highThreshold   = 2.5
	strongThreshold = 3.5

	domainMediumThreshold = 3.0
	domainLowThreshold    = 4.0

	OverallSkillArea = "overall"
)

type Recommendation struct {
	SkillArea string `json:"skill_area"`
	Priority  string `json:"priority"`
	Message   string `json:"message"`
}

// ForCategories applies the category rule to every category mean. Categories
// are visited in name order so the output is reproducible. Strong categories
// (mean >= 3.5) emit nothing; if every category is strong a single low
// priority "overall" entry is returned.
func ForCategories(categoryMeans map[string]float64) []Recommendation {
	names := make([]string, 0, len(categoryMeans))
	for name := range categoryMeans {
		names = append(names, name)
	}
	sort.Strings(names)

	recs := make([]Recommendation, 0, len(names))
	for _, category := range names {
		mean := categoryMeans[category]
		switch {
		case mean < highThreshold:
			recs = append(recs, Recommendation{
				SkillArea: category,
				Priority:  PriorityHigh,
				Message:   fmt.Sprintf("Urgent upskilling needed in %s. Recommend immediate targeted training.", category),
			})
		case mean < strongThreshold:
			recs = append(recs, Recommendation{
				SkillArea: category,
				Priority:  PriorityMedium,
				Message:   fmt.Sprintf("Development needed in %s. Recommend practical workshops and coaching.", category),
			})
		}
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			SkillArea: OverallSkillArea,
			Priority:  PriorityLow,
			Message:   "Strong skill profile. Continue with advanced learning pathways.",
		})
	}
	return recs
}

// ForDomain is the coarser rule of the chat flow, keyed by domain.
func ForDomain(domain string, mean float64) Recommendation {
	rec := Recommendation{SkillArea: domain}
	switch {
	case mean >= domainLowThreshold:
		rec.Priority = DomainPriorityLow
		rec.Message = fmt.Sprintf("Great %s skills. Maintain consistency and try advanced practice tasks.", domain)
	case mean >= domainMediumThreshold:
		rec.Priority = DomainPriorityMedium
		rec.Message = fmt.Sprintf("Good %s skills. Improve through weekly practice and feedback.", domain)
	default:
		rec.Priority = DomainPriorityHigh
		rec.Message = fmt.Sprintf("%s skills need attention. Start with basics + structured training plan.", capitalize(domain))
	}
	return rec
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
