package configs

import (
	"log"

	"storefront/entity"

	"github.com/shopspring/decimal"
)

// SeedCatalog fills an empty product table with the demo catalog so a
// fresh install has something to browse.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("catalog already seeded")
		return nil
	}

	var electronics entity.Category
	if err := db.FirstOrCreate(&electronics, entity.Category{Name: "Electronics"}).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "High-Performance Laptop", Description: "A powerful laptop for all your computing needs.", Price: decimal.RequireFromString("1200.00"), ImageFile: "laptop.jpg", CategoryID: electronics.ID},
		{Name: "Smartphone X", Description: "The latest smartphone with cutting-edge features.", Price: decimal.RequireFromString("800.00"), ImageFile: "phone.jpg", CategoryID: electronics.ID},
		{Name: "Wireless Headphones", Description: "Noise-cancelling headphones for immersive sound.", Price: decimal.RequireFromString("150.00"), ImageFile: "headphones.jpg", CategoryID: electronics.ID},
		{Name: "Smart Watch", Description: "Track your fitness and stay connected.", Price: decimal.RequireFromString("250.00"), ImageFile: "watch.jpg", CategoryID: electronics.ID},
		{Name: "4K Monitor", Description: "Crystal clear display for work and play.", Price: decimal.RequireFromString("300.00"), ImageFile: "monitor.jpg", CategoryID: electronics.ID},
		{Name: "Mechanical Keyboard", Description: "Tactile typing experience.", Price: decimal.RequireFromString("100.00"), ImageFile: "keyboard.jpg", CategoryID: electronics.ID},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Println("catalog seeded:", len(products), "products")
	return nil
}
