package dashboard

import (
	"testing"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 1, want: RiskHigh},
		{score: 2.99, want: RiskHigh},
		{score: 3, want: RiskMedium},
		{score: 3.49, want: RiskMedium},
		{score: 3.5, want: RiskLow},
		{score: 5, want: RiskLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevel(tt.score), "score %v", tt.score)
	}
}

func TestRiskDistribution(t *testing.T) {
	assessments := []*entity.Assessment{
		{OverallScore: 2.5},
		{OverallScore: 3.2},
		{OverallScore: 3.5},
		{OverallScore: 4.8},
	}

	got := RiskDistribution(assessments)

	assert.Equal(t, []RiskBucket{
		{Label: "High Risk (<3)", Count: 1},
		{Label: "Medium Risk (3–3.5)", Count: 1},
		{Label: "Low Risk (>3.5)", Count: 2},
	}, got)

	empty := RiskDistribution(nil)
	assert.Len(t, empty, 3)
	for _, b := range empty {
		assert.Zero(t, b.Count)
	}
}

func TestToLogResponseParsesZapTimestamps(t *testing.T) {
	res := toLogResponse(logger.LogEntry{Timestamp: "2026-03-01T10:20:30.123+0200", Details: map[string]interface{}{"k": "v"}})
	assert.Equal(t, 2026, res.CreatedAt.Year())
	assert.Equal(t, 8, res.CreatedAt.UTC().Hour())
	assert.Equal(t, "v", res.Details["k"])

	res = toLogResponse(logger.LogEntry{Timestamp: "2026-03-01T10:20:30Z"})
	assert.Equal(t, 10, res.CreatedAt.Hour())
}
