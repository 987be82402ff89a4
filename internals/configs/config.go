package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JotformBaseURL   string
	NominatimBaseURL string
	DirectoryBaseURL string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env dosyası bulunamadı, sistem ENV kullanılıyor")
		} else {
			log.Println("✅ .env dosyası yüklendi!")
		}
	} else {
		log.Println("🚀 Railway ortamında, sistem ENV kullanılıyor")
	}

	JotformBaseURL = GetEnv("JOTFORM_BASE_URL", "https://www.jotform.com")
	NominatimBaseURL = GetEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	DirectoryBaseURL = GetEnv("DIRECTORY_BASE_URL", "https://goldenpages.io")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
