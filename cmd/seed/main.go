package main

import (
	"context"
	"log"
	"time"

	"experio/internal/config"
	"experio/internal/models"
	"experio/internal/repositories/mongodb"
	"experio/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds the database with sample experiences, slots and promo codes,
// clearing existing data first.
func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mongoDB, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	experienceRepo := mongodb.NewExperienceRepository(mongoDB.Database, nil)
	slotRepo := mongodb.NewSlotRepository(mongoDB.Database)
	promoRepo := mongodb.NewPromoCodeRepository(mongoDB.Database)
	bookingRepo := mongodb.NewBookingRepository(mongoDB.Database)

	for _, clear := range []func(context.Context) error{
		experienceRepo.DeleteAll, slotRepo.DeleteAll, promoRepo.DeleteAll, bookingRepo.DeleteAll,
	} {
		if err := clear(ctx); err != nil {
			log.Fatalf("Failed to clear collection: %v", err)
		}
	}
	log.Println("Old data cleared")

	experiences := []*models.Experience{
		{
			Title:       "Kayaking",
			Description: "Certified small-group experience. Certified guides.",
			About:       "Join us for a thrilling kayaking adventure through serene waters. Paddles and life vests provided.",
			Location:    "Central Reservoir",
			BasePrice:   999,
			MainImage:   "https://images.pexels.com/photos/2403391/pexels-photo-2403391.jpeg",
			Images:      []string{"https://images.pexels.com/photos/2403391/pexels-photo-2403391.jpeg"},
			Duration:    "3 Hours",
		},
		{
			Title:       "Nandi Hills Sunrise",
			Description: "Witness the breathtaking sunrise from Nandi Hills.",
			About:       "Experience the magic of dawn from one of the most scenic viewpoints. Transport and a guided trek included.",
			Location:    "Nandi Hills",
			BasePrice:   1199,
			MainImage:   "https://images.pexels.com/photos/1687574/pexels-photo-1687574.jpeg",
			Images:      []string{"https://images.pexels.com/photos/1687574/pexels-photo-1687574.jpeg"},
			Duration:    "1 Day",
		},
		{
			Title:       "Coffee Trail",
			Description: "Explore the lush coffee plantations of Coorg.",
			About:       "Walk through aromatic coffee estates, learn about the bean-to-cup process, and savor a freshly brewed cup.",
			Location:    "Coorg",
			BasePrice:   1299,
			MainImage:   "https://images.pexels.com/photos/982635/pexels-photo-982635.jpeg",
			Images:      []string{"https://images.pexels.com/photos/982635/pexels-photo-982635.jpeg"},
			Duration:    "1 Day",
		},
	}
	for _, exp := range experiences {
		if err := experienceRepo.Create(ctx, exp); err != nil {
			log.Fatalf("Failed to seed experience: %v", err)
		}
	}
	log.Println("Sample experiences inserted")

	promoCodes := []*models.PromoCode{
		{Code: "SAVE10", DiscountType: models.DiscountTypePercentage, DiscountValue: 10, IsActive: true},
		{Code: "FLAT100", DiscountType: models.DiscountTypeFlat, DiscountValue: 100, IsActive: true},
	}
	for _, promo := range promoCodes {
		if err := promoRepo.Create(ctx, promo); err != nil {
			log.Fatalf("Failed to seed promo code: %v", err)
		}
	}
	log.Println("Sample promo codes inserted")

	today := time.Now().Truncate(24 * time.Hour).Add(9 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)
	dayAfter := today.Add(48 * time.Hour)

	slots := []*models.Slot{
		{ExperienceID: experiences[0].ID, StartTime: today, TotalCapacity: 10, BookedCount: 8},
		{ExperienceID: experiences[0].ID, StartTime: today.Add(2 * time.Hour), TotalCapacity: 10, BookedCount: 10},
		{ExperienceID: experiences[0].ID, StartTime: today.Add(4 * time.Hour), TotalCapacity: 10, BookedCount: 0},
		{ExperienceID: experiences[1].ID, StartTime: tomorrow, TotalCapacity: 20, BookedCount: 5},
		{ExperienceID: experiences[1].ID, StartTime: tomorrow.Add(2 * time.Hour), TotalCapacity: 20, BookedCount: 18},
		{ExperienceID: experiences[2].ID, StartTime: dayAfter, TotalCapacity: 12, BookedCount: 12},
		{ExperienceID: experiences[2].ID, StartTime: dayAfter.Add(2 * time.Hour), TotalCapacity: 12, BookedCount: 0},
		{ExperienceID: experiences[2].ID, StartTime: dayAfter.Add(4 * time.Hour), TotalCapacity: 12, BookedCount: 4},
	}
	for _, slot := range slots {
		if err := slotRepo.Create(ctx, slot); err != nil {
			log.Fatalf("Failed to seed slot: %v", err)
		}
	}
	log.Println("Sample slots inserted")

	log.Println("Seeding complete")
}
