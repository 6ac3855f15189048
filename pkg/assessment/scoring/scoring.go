package scoring

import "math"

const (
	DomainSoft    = "soft"
	DomainDigital = "digital"
)

// ScoredAnswer is one answered question reduced to what scoring needs.
type ScoredAnswer struct {
	Domain   string
	Category string
	Score    int
}

// Result holds the published averages of an answer set. Every value is
// rounded to two decimals.
type Result struct {
	Overall       float64
	Soft          float64
	Digital       float64
	DomainMeans   map[string]float64
	CategoryMeans map[string]float64
}

type accumulator struct {
	sum   int
	count int
}

func (a accumulator) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return float64(a.sum) / float64(a.count)
}

// Compute aggregates an answer set. Domains without answers score 0, the
// overall score is the mean of the domain means that have answers.
// Sums are integers, so the result does not depend on answer order.
func Compute(answers []ScoredAnswer) Result {
	domains := make(map[string]*accumulator)
	categories := make(map[string]*accumulator)

	for _, a := range answers {
		add(domains, a.Domain, a.Score)
		add(categories, a.Category, a.Score)
	}

	res := Result{
		DomainMeans:   make(map[string]float64, len(domains)),
		CategoryMeans: make(map[string]float64, len(categories)),
	}

	var overallSum float64
	for domain, acc := range domains {
		m := acc.mean()
		overallSum += m
		res.DomainMeans[domain] = Round2(m)
	}
	if len(domains) > 0 {
		res.Overall = Round2(overallSum / float64(len(domains)))
	}

	for category, acc := range categories {
		res.CategoryMeans[category] = Round2(acc.mean())
	}

	res.Soft = res.DomainMeans[DomainSoft]
	res.Digital = res.DomainMeans[DomainDigital]
	return res
}

func add(m map[string]*accumulator, key string, score int) {
	acc, ok := m[key]
	if !ok {
		acc = &accumulator{}
		m[key] = acc
	}
	acc.sum += score
	acc.count++
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
