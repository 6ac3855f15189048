package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCategories(t *testing.T) {
	t.Run("weak and strong categories", func(t *testing.T) {
		recs := ForCategories(map[string]float64{"Communication": 2.0, "Teamwork": 4.0})

		require.Len(t, recs, 1)
		assert.Equal(t, "Communication", recs[0].SkillArea)
		assert.Equal(t, PriorityHigh, recs[0].Priority)
		assert.Contains(t, recs[0].Message, "Urgent upskilling")
		assert.Contains(t, recs[0].Message, "Communication")
	})

	t.Run("all strong falls back to overall", func(t *testing.T) {
		recs := ForCategories(map[string]float64{"Communication": 3.5, "Teamwork": 4.0})

		require.Len(t, recs, 1)
		assert.Equal(t, OverallSkillArea, recs[0].SkillArea)
		assert.Equal(t, PriorityLow, recs[0].Priority)
	})

	t.Run("empty input falls back to overall", func(t *testing.T) {
		recs := ForCategories(nil)

		require.Len(t, recs, 1)
		assert.Equal(t, OverallSkillArea, recs[0].SkillArea)
	})

	t.Run("sorted by category name", func(t *testing.T) {
		recs := ForCategories(map[string]float64{"Teamwork": 3.0, "Adaptability": 1.0, "Leadership": 2.9})

		require.Len(t, recs, 3)
		assert.Equal(t, "Adaptability", recs[0].SkillArea)
		assert.Equal(t, "Leadership", recs[1].SkillArea)
		assert.Equal(t, "Teamwork", recs[2].SkillArea)
	})
}

func TestForCategoriesThresholds(t *testing.T) {
	tests := []struct {
		mean         float64
		wantPriority string
	}{
		{mean: 1.0, wantPriority: PriorityHigh},
		{mean: 2.49, wantPriority: PriorityHigh},
		{mean: 2.5, wantPriority: PriorityMedium},
		{mean: 3.49, wantPriority: PriorityMedium},
		{mean: 3.5, wantPriority: ""},
		{mean: 5.0, wantPriority: ""},
	}

	for _, tt := range tests {
		recs := ForCategories(map[string]float64{"Communication": tt.mean})
		require.Len(t, recs, 1)
		if tt.wantPriority == "" {
			assert.Equal(t, OverallSkillArea, recs[0].SkillArea, "mean %v", tt.mean)
			continue
		}
		assert.Equal(t, "Communication", recs[0].SkillArea, "mean %v", tt.mean)
		assert.Equal(t, tt.wantPriority, recs[0].Priority, "mean %v", tt.mean)
	}
}

func TestForDomain(t *testing.T) {
	tests := []struct {
		mean         float64
		wantPriority string
	}{
		{mean: 0, wantPriority: DomainPriorityHigh},
		{mean: 2.99, wantPriority: DomainPriorityHigh},
		{mean: 3.0, wantPriority: DomainPriorityMedium},
		{mean: 3.99, wantPriority: DomainPriorityMedium},
		{mean: 4.0, wantPriority: DomainPriorityLow},
		{mean: 5.0, wantPriority: DomainPriorityLow},
	}

	for _, tt := range tests {
		rec := ForDomain("digital", tt.mean)
		assert.Equal(t, "digital", rec.SkillArea)
		assert.Equal(t, tt.wantPriority, rec.Priority, "mean %v", tt.mean)
	}

	assert.Equal(t, "Soft skills need attention. Start with basics + structured training plan.", ForDomain("soft", 1).Message)
}
