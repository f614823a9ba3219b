package db

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"terracore/internal/model"
)

const seedAdminEmail = "admin@terracore.com"

// Seed inserts the initial records: one admin user, three properties, three
// materials, and three testimonials. Every block is guarded by an existence
// check, so running it again (or restarting the server) is a no-op.
func Seed(gdb *gorm.DB) error {
	if err := seedAdmin(gdb); err != nil {
		return err
	}
	if err := seedProperties(gdb); err != nil {
		return err
	}
	if err := seedMaterials(gdb); err != nil {
		return err
	}
	return seedTestimonials(gdb)
}

func seedAdmin(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&model.User{}).Where("email = ?", seedAdminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := model.User{
		Email:        seedAdminEmail,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := gdb.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	log.Printf("Admin user created: %s", seedAdminEmail)
	return nil
}

func seedProperties(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&model.Property{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if count > 0 {
		return nil
	}

	properties := []model.Property{
		{
			Title:       "Transekulu Apartment",
			Description: "The Building contains 20 large rooms suitable for AIR BNB or Large Families",
			Type:        "apartment",
			Price:       100000000,
			Location:    "Transekulu, Enugu",
			AreaSqm:     600,
			Bedrooms:    20,
			Bathrooms:   10,
			Features:    model.StringList{"Airbnb Ready", "Large Families", "Spacious"},
			ImageURL:    "/img/property3.png",
			Status:      "active",
			Featured:    true,
		},
		{
			Title:       "Lagos Victoria Island Flat",
			Description: "Luxury 3-bedroom flat in the heart of Victoria Island",
			Type:        "flat",
			Price:       75000000,
			Location:    "Victoria Island, Lagos",
			AreaSqm:     250,
			Bedrooms:    3,
			Bathrooms:   3,
			Features:    model.StringList{"Modern Finishing", "Security", "Parking"},
			ImageURL:    "/img/house1.png",
			Status:      "active",
			Featured:    true,
		},
		{
			Title:       "Enugu Residential House",
			Description: "Beautiful 4-bedroom bungalow in a quiet neighborhood",
			Type:        "house",
			Price:       45000000,
			Location:    "New Haven, Enugu",
			AreaSqm:     400,
			Bedrooms:    4,
			Bathrooms:   3,
			Features:    model.StringList{"Garden", "Garage", "Security"},
			ImageURL:    "/img/house2.png",
			Status:      "active",
			Featured:    false,
		},
	}
	if err := gdb.Create(&properties).Error; err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}
	log.Println("Sample properties seeded")
	return nil
}

func seedMaterials(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&model.Material{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count materials: %w", err)
	}
	if count > 0 {
		return nil
	}

	materials := []model.Material{
		{
			Name:        "Luxury Foreign Doors",
			Description: "For your luxury finishing with our Quality Foreign Doors",
			Category:    "doors",
			PriceMin:    110000,
			PriceMax:    700000,
			ImageURL:    "/img/cream double door.jpeg",
			InStock:     true,
			Status:      "active",
		},
		{
			Name:        "Luxury Foreign Lights",
			Description: "For your High Quality standard Luxurious Lightings",
			Category:    "lighting",
			PriceMin:    800,
			PriceMax:    200000,
			ImageURL:    "/img/Black single door.jpeg",
			InStock:     true,
			Status:      "active",
		},
		{
			Name:        "High Quality Plumbings",
			Description: "For your Top-notch Quality Plumbing materials",
			Category:    "plumbing",
			PriceMin:    4000,
			PriceMax:    20000,
			ImageURL:    "/img/wood door.jpeg",
			InStock:     true,
			Status:      "active",
		},
	}
	if err := gdb.Create(&materials).Error; err != nil {
		return fmt.Errorf("seed materials: %w", err)
	}
	log.Println("Sample building materials seeded")
	return nil
}

func seedTestimonials(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&model.Testimonial{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count testimonials: %w", err)
	}
	if count > 0 {
		return nil
	}

	testimonials := []model.Testimonial{
		{
			Name:    "Mr. Romanus",
			Role:    "Client",
			Message: "I had a seamless and professional experience with TerraCore and their team. They efficiently leased out my unit, and their communication throughout the process was excellent. I highly recommend them to anyone looking for reliable and expert service.",
			Status:  model.TestimonialStatusApproved,
		},
		{
			Name:    "Mr. Emmanuel",
			Role:    "Property Investor",
			Message: "Finding the right home in Lagos can be overwhelming, but TerraCore made it so easy. They listened to my preferences and found me a property that exceeded my expectations. Their professionalism and attention to detail were top-notch.",
			Status:  model.TestimonialStatusApproved,
		},
		{
			Name:    "Mr. Martins",
			Role:    "Road Constructor",
			Message: "TerraCore Solutions provided an accurate and detailed valuation for my property, giving me the confidence I needed to make informed decisions. Their expertise and professionalism were evident from start to finish.",
			Status:  model.TestimonialStatusApproved,
		},
	}
	if err := gdb.Create(&testimonials).Error; err != nil {
		return fmt.Errorf("seed testimonials: %w", err)
	}
	log.Println("Sample testimonials seeded")
	return nil
}
