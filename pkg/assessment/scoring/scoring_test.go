package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		answers     []ScoredAnswer
		wantSoft    float64
		wantDigital float64
		wantOverall float64
	}{
		{
			name: "both domains",
			answers: []ScoredAnswer{
				{Domain: DomainSoft, Category: "Communication", Score: 5},
				{Domain: DomainSoft, Category: "Teamwork", Score: 3},
				{Domain: DomainDigital, Category: "Data Literacy", Score: 2},
				{Domain: DomainDigital, Category: "Data Literacy", Score: 4},
			},
			wantSoft:    4.0,
			wantDigital: 3.0,
			wantOverall: 3.5,
		},
		{
			name: "only soft answered",
			answers: []ScoredAnswer{
				{Domain: DomainSoft, Category: "Communication", Score: 4},
				{Domain: DomainSoft, Category: "Communication", Score: 3},
			},
			wantSoft:    3.5,
			wantDigital: 0,
			wantOverall: 3.5,
		},
		{
			name: "only digital answered",
			answers: []ScoredAnswer{
				{Domain: DomainDigital, Category: "Cyber Safety", Score: 1},
			},
			wantSoft:    0,
			wantDigital: 1,
			wantOverall: 1,
		},
		{
			name:        "no answers",
			answers:     nil,
			wantSoft:    0,
			wantDigital: 0,
			wantOverall: 0,
		},
		{
			name: "rounded to two decimals",
			answers: []ScoredAnswer{
				{Domain: DomainSoft, Category: "A", Score: 5},
				{Domain: DomainSoft, Category: "A", Score: 4},
				{Domain: DomainSoft, Category: "A", Score: 4},
				{Domain: DomainDigital, Category: "B", Score: 2},
			},
			wantSoft:    4.33,
			wantDigital: 2,
			wantOverall: 3.17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(tt.answers)
			assert.InDelta(t, tt.wantSoft, res.Soft, 1e-9)
			assert.InDelta(t, tt.wantDigital, res.Digital, 1e-9)
			assert.InDelta(t, tt.wantOverall, res.Overall, 1e-9)
		})
	}
}

func TestComputeCategoryMeans(t *testing.T) {
	res := Compute([]ScoredAnswer{
		{Domain: DomainSoft, Category: "Communication", Score: 2},
		{Domain: DomainSoft, Category: "Communication", Score: 2},
		{Domain: DomainSoft, Category: "Teamwork", Score: 4},
		{Domain: DomainDigital, Category: "Teamwork", Score: 5},
	})

	assert.Len(t, res.CategoryMeans, 2)
	assert.InDelta(t, 2.0, res.CategoryMeans["Communication"], 1e-9)
	assert.InDelta(t, 4.5, res.CategoryMeans["Teamwork"], 1e-9)
}

func TestComputeIsOrderIndependent(t *testing.T) {
	answers := []ScoredAnswer{
		{Domain: DomainSoft, Category: "Communication", Score: 5},
		{Domain: DomainSoft, Category: "Problem-Solving", Score: 2},
		{Domain: DomainSoft, Category: "Teamwork", Score: 3},
		{Domain: DomainDigital, Category: "Data Literacy", Score: 1},
		{Domain: DomainDigital, Category: "Cyber Safety", Score: 4},
		{Domain: DomainDigital, Category: "Data Literacy", Score: 5},
	}
	want := Compute(answers)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]ScoredAnswer(nil), answers...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Compute(shuffled)
		assert.Equal(t, want.Overall, got.Overall)
		assert.Equal(t, want.Soft, got.Soft)
		assert.Equal(t, want.Digital, got.Digital)
		assert.Equal(t, want.CategoryMeans, got.CategoryMeans)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.5, Round2(2.4999999999))
	assert.Equal(t, 3.33, Round2(10.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
}
