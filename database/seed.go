package database

import (
	"encoding/json"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func tagsJSON(tags ...string) datatypes.JSON {
	b, _ := json.Marshal(tags)
	return datatypes.JSON(b)
}

// SeedData is idempotent; every record is keyed on its unique column.
func SeedData(db *gorm.DB, cfg *config.Config) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 10)
	if err != nil {
		logrus.Errorf("failed to hash seed admin password: %v", err)
		return
	}

	admins := []model.Admin{
		{
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: string(bytes),
			Role:     constants.ROLE_ADMIN,
			IsActive: true,
		},
	}
	for _, admin := range admins {
		if err := db.Where(model.Admin{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
			logrus.Errorf("failed to seed admin %s: %v", admin.Username, err)
		}
	}

	timeSlots := []model.TimeSlot{
		{StartTime: "11:00", EndTime: "12:30", IsActive: true},
		{StartTime: "13:00", EndTime: "14:30", IsActive: true},
		{StartTime: "15:00", EndTime: "16:30", IsActive: true},
		{StartTime: "17:00", EndTime: "18:30", IsActive: true},
		{StartTime: "19:00", EndTime: "20:30", IsActive: true},
		{StartTime: "21:00", EndTime: "22:30", IsActive: true},
	}
	for _, ts := range timeSlots {
		if err := db.Where(model.TimeSlot{StartTime: ts.StartTime, EndTime: ts.EndTime}).FirstOrCreate(&ts).Error; err != nil {
			logrus.Errorf("failed to seed time slot %s-%s: %v", ts.StartTime, ts.EndTime, err)
		}
	}

	tables := []model.Table{
		{TableNumber: 1, Capacity: 2, Location: "window", IsActive: true},
		{TableNumber: 2, Capacity: 2, Location: "window", IsActive: true},
		{TableNumber: 3, Capacity: 4, Location: "indoor", IsActive: true},
		{TableNumber: 4, Capacity: 4, Location: "indoor", IsActive: true},
		{TableNumber: 5, Capacity: 4, Location: "patio", IsActive: true},
		{TableNumber: 6, Capacity: 6, Location: "patio", IsActive: true},
		{TableNumber: 7, Capacity: 8, Location: "indoor", IsActive: true},
		{TableNumber: 8, Capacity: 10, Location: "indoor", IsActive: true},
	}
	for _, t := range tables {
		if err := db.Where(model.Table{TableNumber: t.TableNumber}).FirstOrCreate(&t).Error; err != nil {
			logrus.Errorf("failed to seed table %d: %v", t.TableNumber, err)
		}
	}

	categories := []model.Category{
		{Name: "Starters", Description: "Small plates to begin with", IsActive: true},
		{Name: "Main Courses", Description: "Hearty plates from the kitchen", IsActive: true},
		{Name: "Desserts", Description: "Sweet endings", IsActive: true},
	}
	for _, cat := range categories {
		cat.Slug = slug.Make(cat.Name)
		if err := db.Where(model.Category{Name: cat.Name}).FirstOrCreate(&cat).Error; err != nil {
			logrus.Errorf("failed to seed category %s: %v", cat.Name, err)
		}
	}

	categoryIds := map[string]uint{}
	var seeded []model.Category
	db.Find(&seeded)
	for _, cat := range seeded {
		categoryIds[cat.Name] = cat.ID
	}

	dishes := []model.Dish{
		{Name: "Bruschetta", Price: 8.50, CategoryID: categoryIds["Starters"], IsVegetarian: true, IsAvailable: true, Description: "Grilled bread, tomato, basil", Tags: tagsJSON("vegetarian")},
		{Name: "Greek Salad", Price: 12.00, CategoryID: categoryIds["Starters"], IsVegetarian: true, IsAvailable: true, Description: "Feta, olives, cucumber", Tags: tagsJSON("vegetarian", "gluten-free")},
		{Name: "Lemon Herb Chicken", Price: 18.50, CategoryID: categoryIds["Main Courses"], IsAvailable: true, Description: "Roast chicken with lemon and thyme", Tags: tagsJSON("gluten-free")},
		{Name: "Grilled Salmon", Price: 24.00, CategoryID: categoryIds["Main Courses"], IsAvailable: true, Description: "Atlantic salmon, seasonal greens", Tags: tagsJSON("gluten-free")},
		{Name: "Pasta Primavera", Price: 16.00, CategoryID: categoryIds["Main Courses"], IsVegetarian: true, IsAvailable: true, Description: "Fresh vegetables, olive oil, parmesan", Tags: tagsJSON("vegetarian")},
		{Name: "Ribeye Steak", Price: 70.00, CategoryID: categoryIds["Main Courses"], IsAvailable: true, Description: "Dry-aged, 400g, for two", Tags: tagsJSON()},
		{Name: "Lemon Cake", Price: 9.00, CategoryID: categoryIds["Desserts"], IsVegetarian: true, IsAvailable: true, Description: "House classic", Tags: tagsJSON("vegetarian")},
		{Name: "Baklava", Price: 10.50, CategoryID: categoryIds["Desserts"], IsVegetarian: true, IsAvailable: true, Description: "Walnut and honey layers", Tags: tagsJSON("vegetarian", "contains-nuts")},
	}
	for _, d := range dishes {
		if d.CategoryID == 0 {
			logrus.Errorf("missing category for dish %s, skipping", d.Name)
			continue
		}
		d.Slug = slug.Make(d.Name)
		if err := db.Where(model.Dish{Slug: d.Slug}).FirstOrCreate(&d).Error; err != nil {
			logrus.Errorf("failed to seed dish %s: %v", d.Name, err)
		}
	}
}
