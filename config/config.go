package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// JWTSecret used to sign admin tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "fast_food_seeder_secret_2024"))

type Config struct {
	Port  string
	Store StoreConfig
	Admin AdminConfig
}

// StoreConfig identifies the remote document store and file bucket the
// seeder writes to. Database, collections and bucket are provisioned
// out of band — this service never creates them.
type StoreConfig struct {
	Endpoint string
	Project  string
	APIKey   string

	DatabaseID                     string
	CategoriesCollectionID         string
	CustomizationsCollectionID     string
	MenuCollectionID               string
	MenuCustomizationsCollectionID string
	BucketID                       string
}

type AdminConfig struct {
	// PasswordHash is a bcrypt hash. When ADMIN_PASSWORD_HASH is unset, a
	// hash of ADMIN_PASSWORD (default "admin123") is generated at load.
	PasswordHash []byte
}

// Load reads configuration from .env / environment variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),
		Store: StoreConfig{
			Endpoint:                       getEnv("STORE_ENDPOINT", "http://localhost:9090/v1"),
			Project:                        getEnv("STORE_PROJECT_ID", "fast-food"),
			APIKey:                         os.Getenv("STORE_API_KEY"),
			DatabaseID:                     getEnv("STORE_DATABASE_ID", "fastfood"),
			CategoriesCollectionID:         getEnv("CATEGORIES_COLLECTION_ID", "categories"),
			CustomizationsCollectionID:     getEnv("CUSTOMIZATIONS_COLLECTION_ID", "customizations"),
			MenuCollectionID:               getEnv("MENU_COLLECTION_ID", "menu"),
			MenuCustomizationsCollectionID: getEnv("MENU_CUSTOMIZATIONS_COLLECTION_ID", "menu_customizations"),
			BucketID:                       getEnv("STORAGE_BUCKET_ID", "images"),
		},
		Admin: AdminConfig{
			PasswordHash: adminPasswordHash(),
		},
	}
}

func adminPasswordHash() []byte {
	if h := os.Getenv("ADMIN_PASSWORD_HASH"); h != "" {
		return []byte(h)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	return hash
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
