package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"digital-menu/internal/config"
	"digital-menu/internal/database"
	"digital-menu/internal/model"
	"digital-menu/internal/repository"
)

// Seeds the database with a sample menu, categories and default business
// settings so the API has something to serve on a fresh install.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	categoryRepo := repository.NewCategoryRepository(pool, logger)
	menuRepo := repository.NewMenuRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)

	for _, name := range []string{"Starters", "Mains", "Breads", "Desserts", "Beverages"} {
		if _, err := categoryRepo.Create(ctx, name); err != nil {
			log.Fatalf("Failed to create category %q: %v", name, err)
		}
		fmt.Printf("Created category %s\n", name)
	}

	items := []model.MenuItem{
		{Name: "Paneer Tikka", Price: 220, Category: "Starters", Available: true, Visible: true, Type: model.DietVeg, Description: "Char-grilled cottage cheese with mint chutney"},
		{Name: "Chicken 65", Price: 260, Category: "Starters", Available: true, Visible: true, Type: model.DietNonVeg},
		{Name: "Dal Makhani", Price: 180, Category: "Mains", Available: true, Visible: true, Type: model.DietVeg, Description: "Slow-cooked black lentils"},
		{Name: "Butter Chicken", Price: 320, Category: "Mains", Available: true, Visible: true, Type: model.DietNonVeg},
		{Name: "Veg Biryani", Price: 240, Category: "Mains", Available: true, Visible: true, Type: model.DietVeg},
		{Name: "Butter Naan", Price: 50, Category: "Breads", Available: true, Visible: true, Type: model.DietVeg},
		{Name: "Tandoori Roti", Price: 30, Category: "Breads", Available: true, Visible: true, Type: model.DietVeg},
		{Name: "Gulab Jamun", Price: 90, Category: "Desserts", Available: true, Visible: true, Type: model.DietVeg},
		{Name: "Masala Chai", Price: 40, Category: "Beverages", Available: true, Visible: true, Type: model.DietVeg},
		{Name: "Fresh Lime Soda", Price: 60, Category: "Beverages", Available: true, Visible: true, Type: model.DietVeg},
	}

	for _, item := range items {
		created, err := menuRepo.Create(ctx, item)
		if err != nil {
			log.Fatalf("Failed to create menu item %q: %v", item.Name, err)
		}
		fmt.Printf("Created menu item %s (%s)\n", created.Name, created.ID)
	}

	// Initialise the settings document with the defaults, overriding the
	// contact number when one is provided.
	update := model.BusinessSettingsUpdate{}
	if phone := os.Getenv("SEED_WHATSAPP_NUMBER"); phone != "" {
		update.WhatsAppNumber = &phone
	}
	if err := settingsRepo.Update(ctx, update); err != nil {
		log.Fatalf("Failed to initialise business settings: %v", err)
	}

	fmt.Println("\nDatabase seeded successfully!")
}
