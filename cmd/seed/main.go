package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Contact{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	switch {
	case err == nil:
		log.Printf("Demo user already exists (id=%d)", user.ID)
	case err == gorm.ErrRecordNotFound:
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user = &model.User{
			Email:        demoEmail,
			PasswordHash: string(hash),
			IsActive:     true,
			IsVerified:   true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user (id=%d)", user.ID)
	default:
		log.Fatalf("Failed to look up demo user: %v", err)
	}

	now := time.Now()
	contacts := []model.Contact{
		{
			FirstName:   "Ann",
			LastName:    "Lee",
			Email:       "ann.lee@example.com",
			PhoneNumber: "+380501112233",
			Birthday:    model.DateOf(now.AddDate(0, 0, 3)),
			OwnerID:     user.ID,
		},
		{
			FirstName:      "Bohdan",
			LastName:       "Koval",
			Email:          "b.koval@example.com",
			PhoneNumber:    "+380671234567",
			Birthday:       model.NewDate(1990, time.March, 14),
			AdditionalInfo: "met at GopherCon",
			OwnerID:        user.ID,
		},
		{
			FirstName:   "Clara",
			LastName:    "Nowak",
			Email:       "clara.nowak@example.com",
			PhoneNumber: "+48501987654",
			Birthday:    model.DateOf(now.AddDate(0, 0, 6)),
			OwnerID:     user.ID,
		},
	}

	seeded := 0
	for i := range contacts {
		if err := contactRepo.Create(ctx, &contacts[i]); err != nil {
			log.Printf("Skipping contact %s: %v", contacts[i].Email, err)
			continue
		}
		seeded++
	}

	log.Printf("Seed complete: %d contacts created for %s", seeded, demoEmail)
}
