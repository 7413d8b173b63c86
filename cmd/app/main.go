package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"factoryops/cmd"
	"factoryops/internal/adapters/out/postgres/employeerepo"
	"factoryops/internal/adapters/out/postgres/materialrepo"
	"factoryops/internal/adapters/out/postgres/orderrepo"
	"factoryops/internal/adapters/out/postgres/shiftrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultMaxShiftDuration = 12 * time.Hour

func main() {
	configs := getConfigs()
	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		MaxShiftDuration: maxShiftDuration(),
	}
	return config
}

func maxShiftDuration() time.Duration {
	raw := os.Getenv("MAX_SHIFT_DURATION")
	if raw == "" {
		return defaultMaxShiftDuration
	}

	duration, err := time.ParseDuration(raw)
	if err != nil || duration <= 0 {
		log.Fatalf("Invalid MAX_SHIFT_DURATION %q", raw)
	}
	return duration
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&materialrepo.MaterialDTO{},
		&employeerepo.EmployeeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.RequirementDTO{},
		&shiftrepo.ShiftDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
