// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"
	"github.com/goodwellmafunga/skills-assessment/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// It has a single connection, so code under test must not query outside
// an open unit of work transaction.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.Config(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func NewFactory(t testing.TB) (unitofwork.RepositoryFactory, *gorm.DB) {
	db := NewDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

// QuestionSpec describes a fixture question. Options A..E score 5..1.
type QuestionSpec struct {
	Domain       entity.QuestionDomain
	Category     string
	DisplayOrder int
	Inactive     bool
}

var labels = []string{"A", "B", "C", "D", "E"}

func SeedQuestions(t testing.TB, db *gorm.DB, specs ...QuestionSpec) []*model.Question {
	t.Helper()

	out := make([]*model.Question, 0, len(specs))
	for i, s := range specs {
		q := &model.Question{
			Text:         fmt.Sprintf("Question %d about %s?", i+1, s.Category),
			Domain:       string(s.Domain),
			Category:     s.Category,
			IsActive:     !s.Inactive,
			DisplayOrder: s.DisplayOrder,
		}
		for j, label := range labels {
			q.Options = append(q.Options, &model.QuestionOption{
				Label: label,
				Text:  fmt.Sprintf("Option %s", label),
				Score: 5 - j,
			})
		}
		require.NoError(t, db.Create(q).Error)
		out = append(out, q)
	}
	return out
}

// OptionID returns the id of the option with the given label.
func OptionID(t testing.TB, q *model.Question, label string) uint {
	t.Helper()
	for _, op := range q.Options {
		if op.Label == label {
			return op.Id
		}
	}
	t.Fatalf("question %d has no option %s", q.Id, label)
	return 0
}
