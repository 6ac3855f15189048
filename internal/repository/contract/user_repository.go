package contract

import (
	"context"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"
)

type UserRepository interface {
	// Create fails with gorm.ErrDuplicatedKey when the email is taken.
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}
