package main

import (
	"log"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/config"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

func main() {
	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.Account{},
		&models.Card{},
		&models.Transaction{},
		&models.Budget{},
		&models.Goal{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")
}
