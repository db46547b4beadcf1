// Package main provides offline admin management utilities for Skillswap.
package main

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"os"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// The first admin cannot be promoted through the API (that path requires an
// existing admin), so this tool bootstraps one. It is gated by the
// ADMIN_SECRET_KEY from configuration.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  promote <email> <admin-secret>  - Promote user to admin")
		fmt.Println("  demote <email>                  - Demote user from admin")
		fmt.Println("  list-admins                     - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	switch os.Args[1] {
	case "promote":
		if len(os.Args) < 4 {
			fmt.Println("Usage: promote <email> <admin-secret>")
			os.Exit(1)
		}
		if subtle.ConstantTimeCompare([]byte(os.Args[3]), []byte(cfg.AdminSecretKey)) != 1 {
			fmt.Println("Invalid admin secret")
			os.Exit(1)
		}
		promote(db, os.Args[2])

	case "demote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: demote <email>")
			os.Exit(1)
		}
		demote(db, os.Args[2])

	case "list-admins":
		listAdmins(db)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func findUser(db *gorm.DB, email string) *models.User {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User %s not found\n", email)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}
	return &user
}

func promote(db *gorm.DB, email string) {
	user := findUser(db, email)
	if user.IsAdmin {
		fmt.Printf("User %s (ID: %d) is already an admin\n", user.Email, user.ID)
		return
	}

	user.IsAdmin = true
	if err := db.Save(user).Error; err != nil {
		log.Fatalf("Failed to promote user: %v", err)
	}

	// Bootstrap promotions carry the promoted user as actor; there is no
	// acting admin offline.
	entry := &models.AdminLog{
		AdminID:      user.ID,
		Action:       models.AdminActionPromoteUser,
		TargetUserID: &user.ID,
		Details:      "Bootstrap promotion of " + user.Email + " via CLI",
	}
	if err := db.Create(entry).Error; err != nil {
		log.Fatalf("Failed to record audit entry: %v", err)
	}

	fmt.Printf("User %s (ID: %d) promoted to admin\n", user.Email, user.ID)
}

func demote(db *gorm.DB, email string) {
	user := findUser(db, email)
	if !user.IsAdmin {
		fmt.Printf("User %s (ID: %d) is not an admin\n", user.Email, user.ID)
		return
	}

	user.IsAdmin = false
	if err := db.Save(user).Error; err != nil {
		log.Fatalf("Failed to demote user: %v", err)
	}
	fmt.Printf("User %s (ID: %d) demoted from admin\n", user.Email, user.ID)
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("is_admin = ?", true).Order("id").Find(&admins).Error; err != nil {
		log.Fatalf("Failed to list admins: %v", err)
	}
	if len(admins) == 0 {
		fmt.Println("No admins found")
		return
	}
	for _, admin := range admins {
		fmt.Printf("ID: %d  %s  <%s>\n", admin.ID, admin.Name, admin.Email)
	}
}
