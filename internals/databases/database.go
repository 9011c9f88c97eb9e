package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"templeku_backend/internals/configs"
)

// Connect membuka koneksi PostgreSQL dan mengembalikan handle-nya.
// Handle ini dikonstruksi sekali di main lalu dioper ke route/controller,
// tidak disimpan sebagai singleton package.
func Connect() (*gorm.DB, error) {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=templeku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal konek DB: %w", err)
	}
	log.Println("✅ DB connected.")
	return db, nil
}

// TunePool menyetel ukuran pool koneksi sql.DB di bawah GORM.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] Gagal ambil sql.DB untuk tuning pool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	log.Println("✅ DB pool tuned.")
}

// WarmUpQueries memanaskan koneksi supaya request pertama tidak cold.
func WarmUpQueries(db *gorm.DB) {
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		log.Printf("[WARN] Warm-up query gagal: %v", err)
		return
	}
	log.Println("✅ DB warm-up selesai.")
}
