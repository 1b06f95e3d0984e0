package infra

import (
	"log"

	"greenway/internal/models/db_models"
	"greenway/pkg/utils"

	"gorm.io/gorm"
)

type seedUser struct {
	Name       string
	Username   string
	Email      string
	Password   string
	GreenScore int
}

var seedUsers = []seedUser{
	{Name: "Vibhas Goud", Username: "vibhas", Email: "vibhas@example.com", Password: "vibhas", GreenScore: 756},
	{Name: "Hemanth Sai", Username: "hemanth", Email: "hemanth@example.com", Password: "hemanth", GreenScore: 892},
	{Name: "Sowmya", Username: "sowmya", Email: "sowmya@example.com", Password: "sowmya", GreenScore: 621},
	{Name: "Maneesh Reddy", Username: "maneesh", Email: "maneesh@example.com", Password: "maneesh", GreenScore: 548},
}

var seedProducts = []db_models.Product{
	{Name: "Indoor Snake Plant", Description: "Low-maintenance air-purifying plant, perfect for beginners.", PointsCost: 250, Category: "plants", ImageURL: "https://images.unsplash.com/photo-1616500594881-c379afa7af6b?q=80&w=500", Stock: 10, SustainabilityRating: 5, Featured: true},
	{Name: "Peace Lily", Description: "Beautiful flowering plant that helps clean indoor air.", PointsCost: 300, Category: "plants", ImageURL: "https://images.unsplash.com/photo-1615213612138-4d1e2c33932d?q=80&w=500", Stock: 8, SustainabilityRating: 5},
	{Name: "Spider Plant", Description: "Fast-growing, adaptable plant that removes toxins from the air.", PointsCost: 200, Category: "plants", ImageURL: "https://images.unsplash.com/photo-1572688484438-313a6e50c333?q=80&w=500", Stock: 15, SustainabilityRating: 4},
	{Name: "Bamboo Utensil Set", Description: "Reusable bamboo cutlery set with carrying case.", PointsCost: 180, Category: "home", ImageURL: "https://images.unsplash.com/photo-1584346133934-a3c73e3daa14?q=80&w=500", Stock: 20, SustainabilityRating: 5, Featured: true},
	{Name: "Beeswax Food Wraps", Description: "Reusable, biodegradable alternative to plastic wrap.", PointsCost: 220, Category: "home", ImageURL: "https://images.unsplash.com/photo-1601459441284-7f0889bac6b3?q=80&w=500", Stock: 12, SustainabilityRating: 5},
	{Name: "Bamboo Toothbrush", Description: "Biodegradable toothbrush with soft bristles.", PointsCost: 80, Category: "personal", ImageURL: "https://images.unsplash.com/photo-1607613009820-a29f7bb81c04?q=80&w=500", Stock: 30, SustainabilityRating: 4},
	{Name: "Organic Cotton Tote", Description: "Durable, washable shopping bag made from organic cotton.", PointsCost: 150, Category: "personal", ImageURL: "https://images.unsplash.com/photo-1590105577767-e21a1067899f?q=80&w=500", Stock: 25, SustainabilityRating: 4, Featured: true},
	{Name: "Stainless Steel Water Bottle", Description: "Insulated, reusable water bottle that keeps drinks hot or cold.", PointsCost: 350, Category: "accessories", ImageURL: "https://images.unsplash.com/photo-1523362628745-0c100150b504?q=80&w=500", Stock: 18, SustainabilityRating: 5},
	{Name: "Solar Powered Charger", Description: "Portable solar panel for charging phones and small devices.", PointsCost: 500, Category: "accessories", ImageURL: "https://images.unsplash.com/photo-1624846156538-f83ead4f99b4?q=80&w=500", Stock: 5, SustainabilityRating: 5, Featured: true},
	{Name: "Recycled Glass Containers", Description: "Set of 3 food storage containers made from recycled glass.", PointsCost: 280, Category: "home", ImageURL: "https://images.unsplash.com/photo-1590845947667-163222006344?q=80&w=500", Stock: 10, SustainabilityRating: 4},
	{Name: "Herb Garden Kit", Description: "Everything you need to grow basil, parsley, and mint at home.", PointsCost: 320, Category: "plants", ImageURL: "https://images.unsplash.com/photo-1466692476655-abc7e1d0af05?q=80&w=500", Stock: 7, SustainabilityRating: 5},
	{Name: "Shampoo Bar", Description: "Zero-waste solid shampoo that lasts as long as 3 bottles.", PointsCost: 120, Category: "personal", ImageURL: "https://images.unsplash.com/photo-1607006483513-0462750565eb?q=80&w=500", Stock: 15, SustainabilityRating: 5},
}

// SeedDemoData inserts demo accounts and the rewards catalog on first boot.
// Inserts are skipped when the tables already have rows.
func SeedDemoData(db *gorm.DB) {
	var accountCount int64
	db.Model(&db_models.Account{}).Count(&accountCount)
	if accountCount == 0 {
		for _, u := range seedUsers {
			hash, err := utils.HashPassword(u.Password)
			if err != nil {
				log.Printf("Error hashing seed password for %s: %v", u.Username, err)
				continue
			}
			account := db_models.Account{
				Name:         u.Name,
				Username:     u.Username,
				Email:        u.Email,
				PasswordHash: hash,
				GreenScore:   u.GreenScore,
			}
			if err := db.Create(&account).Error; err != nil {
				log.Printf("Error seeding account %s: %v", u.Username, err)
			}
		}
	}

	var productCount int64
	db.Model(&db_models.Product{}).Count(&productCount)
	if productCount == 0 {
		for i := range seedProducts {
			p := seedProducts[i]
			if err := db.Create(&p).Error; err != nil {
				log.Printf("Error seeding product %s: %v", p.Name, err)
			}
		}
	}
}
