package service

import (
	"context"
	"testing"

	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequest() *dto.CreateQuestionRequest {
	return &dto.CreateQuestionRequest{
		Text:         "  How often do you   back up your files? ",
		Domain:       "digital",
		Category:     " Cyber  Safety ",
		DisplayOrder: 4,
		Options: []dto.QuestionOptionRequest{
			{Label: "b", Text: "Sometimes", Score: 3},
			{Label: "a", Text: "Always", Score: 5},
		},
	}
}

func TestQuestionServiceCreate(t *testing.T) {
	factory, _ := testutil.NewFactory(t)
	svc := NewQuestionService(factory)
	ctx := context.Background()

	res, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	assert.NotZero(t, res.Id)
	assert.Equal(t, "How often do you back up your files?", res.Text)
	assert.Equal(t, "Cyber Safety", res.Category)
	assert.True(t, res.IsActive)
	require.Len(t, res.Options, 2)
	assert.Equal(t, "A", res.Options[0].Label)
	assert.Equal(t, "B", res.Options[1].Label)

	t.Run("duplicate question", func(t *testing.T) {
		req := createRequest()
		req.Text = "how often do you back up your FILES?"
		req.Category = "cyber safety"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, apperror.ErrConflict)
	})

	t.Run("same text in another category", func(t *testing.T) {
		req := createRequest()
		req.Category = "Data Literacy"
		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})
}

func TestQuestionServiceCreateValidation(t *testing.T) {
	factory, _ := testutil.NewFactory(t)
	svc := NewQuestionService(factory)

	tests := []struct {
		name   string
		mutate func(r *dto.CreateQuestionRequest)
	}{
		{name: "blank text", mutate: func(r *dto.CreateQuestionRequest) { r.Text = "   " }},
		{name: "unknown domain", mutate: func(r *dto.CreateQuestionRequest) { r.Domain = "hard" }},
		{name: "single option", mutate: func(r *dto.CreateQuestionRequest) { r.Options = r.Options[:1] }},
		{name: "duplicate labels", mutate: func(r *dto.CreateQuestionRequest) { r.Options[1].Label = " B " }},
		{name: "label outside A-E", mutate: func(r *dto.CreateQuestionRequest) { r.Options[0].Label = "F" }},
		{name: "multi letter label", mutate: func(r *dto.CreateQuestionRequest) { r.Options[0].Label = "zz" }},
		{name: "blank label", mutate: func(r *dto.CreateQuestionRequest) { r.Options[0].Label = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestQuestionServiceCreateInactive(t *testing.T) {
	factory, _ := testutil.NewFactory(t)
	svc := NewQuestionService(factory)

	inactive := false
	req := createRequest()
	req.IsActive = &inactive

	res, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.IsActive)
}

func TestQuestionServiceList(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	testutil.SeedQuestions(t, db,
		testutil.QuestionSpec{Domain: entity.QuestionDomainDigital, Category: "Data Literacy", DisplayOrder: 2},
		testutil.QuestionSpec{Domain: entity.QuestionDomainSoft, Category: "Communication", DisplayOrder: 1},
		testutil.QuestionSpec{Domain: entity.QuestionDomainSoft, Category: "Teamwork", DisplayOrder: 3, Inactive: true},
	)
	svc := NewQuestionService(factory)
	ctx := context.Background()

	all, err := svc.List(ctx, &dto.ListQuestionsRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Communication", all[0].Category)
	assert.Equal(t, "Data Literacy", all[1].Category)
	require.Len(t, all[0].Options, 5)
	assert.Equal(t, "A", all[0].Options[0].Label)

	active, err := svc.List(ctx, &dto.ListQuestionsRequest{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	soft, err := svc.List(ctx, &dto.ListQuestionsRequest{Domain: "soft", Category: " teamwork "})
	require.NoError(t, err)
	require.Len(t, soft, 1)
	assert.False(t, soft[0].IsActive)

	_, err = svc.List(ctx, &dto.ListQuestionsRequest{Domain: "other"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
