package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/auth/model"
	userModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/model"

	militaryModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/model"
	unavailabilityModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
	unavailabilityTypeModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/model"

	scaleModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/model"

	notificationModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/notifications/model"
	configurationModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=escala_horus&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ Banco conectado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// ⚖️ Ajustar conforme o limite do provedor/PgBouncer
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate garante o schema canônico de todas as tabelas do domínio.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&militaryModel.MilitaryModel{},
		&scaleModel.ScaleModel{},
		&scaleModel.ServiceModel{},
		&scaleModel.ReservationModel{},
		&unavailabilityTypeModel.UnavailabilityTypeModel{},
		&unavailabilityModel.UnavailabilityModel{},
		&configurationModel.ConfigurationModel{},
		&notificationModel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("❌ Falha na migração do schema: %v", err)
	}
	log.Println("✅ Migração do schema concluída.")
}

func WarmUpQueries() {
	// ping leve para "encher" o pool logo após o boot
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
