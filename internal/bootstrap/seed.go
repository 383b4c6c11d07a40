package bootstrap

import (
	"log"

	"anoa.com/kosthub/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Hostel{},
		&model.StudentProfile{},
		&model.Ticket{},
		&model.Payment{},
		&model.Announcement{},
	)
}

func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@kosthub.com").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		FullName:     "Administrator",
		Email:        "admin@kosthub.com",
		PasswordHash: string(hashedPasswordBytes),
		Role:         model.RoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	log.Println("   Email: admin@kosthub.com")
	log.Println("   Password: admin123")

	return nil
}
