package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/service"
	"github.com/goodwellmafunga/skills-assessment/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var optionLabels = []string{"A", "B", "C", "D", "E"}

type seedQuestion struct {
	Domain   string
	Category string
	Text     string
	Options  []string
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding question bank...")
	created, err := seedQuestions(db, questionBank)
	if err != nil {
		log.Fatalf("Error: question seeding failed: %v", err)
	}
	log.Printf("Question bank seeded: %d created, %d already present", created, len(questionBank)-created)

	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user")
		return
	}
	if err := seedAdmin(db, email, password); err != nil {
		log.Fatalf("Error: admin seeding failed: %v", err)
	}
}

// seedQuestions inserts bank entries that are not present yet, matching on
// domain, category and text. Existing questions are left untouched.
func seedQuestions(db *gorm.DB, bank []seedQuestion) (int, error) {
	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for i, q := range bank {
			var count int64
			if err := tx.Model(&model.Question{}).
				Where("domain = ? AND LOWER(category) = LOWER(?) AND LOWER(text) = LOWER(?)", q.Domain, q.Category, q.Text).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				log.Printf("Question %d already exists, skipping...", i+1)
				continue
			}

			question := &model.Question{
				Text:         strings.TrimSpace(q.Text),
				Domain:       q.Domain,
				Category:     strings.TrimSpace(q.Category),
				IsActive:     true,
				DisplayOrder: i + 1,
			}
			for j, text := range q.Options {
				question.Options = append(question.Options, &model.QuestionOption{
					Label: optionLabels[j],
					Text:  strings.TrimSpace(text),
					Score: len(optionLabels) - j,
				})
			}
			if err := tx.Create(question).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	return created, err
}

func seedAdmin(db *gorm.DB, email, password string) error {
	email = strings.ToLower(email)

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Admin '%s' already exists, skipping...", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &model.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         string(entity.UserRoleAdmin),
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("Created admin user: %s", email)
	return nil
}
