package database

import (
	"log"

	"banka-backend/internal/config"
	"banka-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate: şema migration'ı. Testler aynı şemayı sqlite üzerinde kurar.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Musteri{},
		&models.Odeme{},
		&models.AuditLog{},
	)
}
