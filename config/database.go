package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func LoadEnv() {
	_ = godotenv.Load()
}

func ConnectDB() *gorm.DB {
	LoadEnv()

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	name := os.Getenv("DB_NAME")
	params := os.Getenv("DB_PARAMS")

	if params == "" {
		params = "charset=utf8mb4&parseTime=true&loc=Local"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, name, params)
	// TranslateError maps vendor duplicate-key errors to gorm.ErrDuplicatedKey
	// so the store layer never has to match on MySQL error numbers.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	log.Println("✅ Connected to database:", name)
	return db
}
