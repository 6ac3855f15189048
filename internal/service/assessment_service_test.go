package service

import (
	"context"
	"testing"

	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentServiceSubmit(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	qs := testutil.SeedQuestions(t, db,
		testutil.QuestionSpec{Domain: entity.QuestionDomainSoft, Category: "Communication", DisplayOrder: 1},
		testutil.QuestionSpec{Domain: entity.QuestionDomainSoft, Category: "Teamwork", DisplayOrder: 2},
		testutil.QuestionSpec{Domain: entity.QuestionDomainDigital, Category: "Data Literacy", DisplayOrder: 3},
	)
	svc := NewAssessmentService(factory, logger.NewNopLogger())
	ctx := context.Background()
	sector := "Agriculture"

	req := &dto.SubmitAssessmentRequest{
		SubmissionToken:  "token-0001",
		RespondentSector: &sector,
		Answers: []dto.AnswerRequest{
			{QuestionId: qs[0].Id, OptionId: testutil.OptionID(t, qs[0], "A")}, // 5
			{QuestionId: qs[1].Id, OptionId: testutil.OptionID(t, qs[1], "D")}, // 2
			{QuestionId: qs[2].Id, OptionId: testutil.OptionID(t, qs[2], "B")}, // 4
		},
	}

	res, err := svc.Submit(ctx, nil, req)
	require.NoError(t, err)

	assert.Equal(t, "web", res.Source)
	assert.InDelta(t, 3.5, res.SoftScore, 1e-9)
	assert.InDelta(t, 4.0, res.DigitalScore, 1e-9)
	assert.InDelta(t, 3.75, res.OverallScore, 1e-9)
	require.NotNil(t, res.CompletedAt)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "Teamwork", res.Recommendations[0].SkillArea)
	assert.Equal(t, "high", res.Recommendations[0].Priority)

	var answers, events int64
	require.NoError(t, db.Model(&model.AssessmentAnswer{}).Count(&answers).Error)
	require.NoError(t, db.Model(&model.OutboxEvent{}).Count(&events).Error)
	assert.EqualValues(t, 3, answers)
	assert.EqualValues(t, 1, events)

	shown, err := svc.Show(ctx, res.AssessmentId)
	require.NoError(t, err)
	assert.Equal(t, res.OverallScore, shown.OverallScore)
	assert.Equal(t, res.Recommendations, shown.Recommendations)

	t.Run("duplicate token", func(t *testing.T) {
		_, err := svc.Submit(ctx, nil, req)
		assert.ErrorIs(t, err, apperror.ErrConflict)

		var count int64
		require.NoError(t, db.Model(&model.Assessment{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestAssessmentServiceSubmitValidation(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	qs := testutil.SeedQuestions(t, db,
		testutil.QuestionSpec{Domain: entity.QuestionDomainSoft, Category: "Communication", DisplayOrder: 1},
		testutil.QuestionSpec{Domain: entity.QuestionDomainSoft, Category: "Teamwork", DisplayOrder: 2, Inactive: true},
	)
	svc := NewAssessmentService(factory, logger.NewNopLogger())

	tests := []struct {
		name    string
		answers []dto.AnswerRequest
	}{
		{name: "no answers", answers: nil},
		{name: "option of another question", answers: []dto.AnswerRequest{
			{QuestionId: qs[0].Id, OptionId: testutil.OptionID(t, qs[1], "A")},
		}},
		{name: "unknown question", answers: []dto.AnswerRequest{
			{QuestionId: 9999, OptionId: testutil.OptionID(t, qs[0], "A")},
		}},
		{name: "inactive question", answers: []dto.AnswerRequest{
			{QuestionId: qs[1].Id, OptionId: testutil.OptionID(t, qs[1], "A")},
		}},
		{name: "question answered twice", answers: []dto.AnswerRequest{
			{QuestionId: qs[0].Id, OptionId: testutil.OptionID(t, qs[0], "A")},
			{QuestionId: qs[0].Id, OptionId: testutil.OptionID(t, qs[0], "B")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), nil, &dto.SubmitAssessmentRequest{
				SubmissionToken: "token-" + uuid.NewString()[:8],
				Answers:         tt.answers,
			})
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.Assessment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAssessmentServiceShowNotFound(t *testing.T) {
	factory, _ := testutil.NewFactory(t)
	svc := NewAssessmentService(factory, logger.NewNopLogger())

	_, err := svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
