// Команда seed наполняет базу тестовыми данными для dev-окружения:
// несколько мастеров и записи на две недели вокруг сегодняшней даты.
//
// Использование:
//
//	go run ./cmd/seed -config config.toml -salon 1 -staff 4 -days 14
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/config"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/fixtures"
	appointmentRepo "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/infra/storage/appointment"
	staffRepo "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/infra/storage/staff"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	salonID := flag.Int64("salon", 1, "ID салона для наполнения")
	staffCount := flag.Int("staff", 4, "количество мастеров")
	days := flag.Int("days", 14, "количество дней вокруг сегодня")
	perDay := flag.Int("per-day", 5, "записей на мастера в день (максимум)")
	seed := flag.Uint64("seed", 42, "seed генератора")
	flag.Parse()

	// .env опционален: переменные окружения могут переопределить конфиг в dev
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	gen := fixtures.NewGenerator(*seed)
	staffRepository := staffRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db)

	log.Info("Seeding salon=%d: %d staff, %d days", *salonID, *staffCount, *days)

	today := time.Now().Truncate(24 * time.Hour)
	totalAppointments := 0

	for i := 0; i < *staffCount; i++ {
		member := gen.StaffMember(0, *salonID)
		created, err := staffRepository.Create(ctx, member)
		if err != nil {
			log.Fatal("Failed to create staff member: %v", err)
		}
		log.Info("Created staff id=%d name=%s role=%s window=%s-%s",
			created.ID, created.Name, created.Role, created.ActiveFrom, created.ActiveTo)

		// Записи на days дней вокруг сегодня (половина в прошлом, половина в будущем)
		for offset := -*days / 2; offset <= *days/2; offset++ {
			date := today.AddDate(0, 0, offset)
			count := 1 + (i+offset+*days)%*perDay
			for j := 0; j < count; j++ {
				appt := gen.Appointment(0, created, date)
				if _, err := appointmentRepository.Create(ctx, appt); err != nil {
					log.Warn("Failed to create appointment for staff=%d date=%s: %v",
						created.ID, date.Format("2006-01-02"), err)
					continue
				}
				totalAppointments++
			}
		}
	}

	log.Info("Seed complete: %d staff, %d appointments", *staffCount, totalAppointments)
}
