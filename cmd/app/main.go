package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"shopfloor/cmd"
	adapterhttp "shopfloor/internal/adapters/in/http"
	"shopfloor/internal/adapters/out/postgres/auditrepo"
	"shopfloor/internal/adapters/out/postgres/controlorderrepo"
	"shopfloor/internal/adapters/out/postgres/workorderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	migrateDB(db)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		InventoryBaseURL:      goDotEnvVariable("INVENTORY_BASE_URL"),
		SupermarketLocationID: goDotEnvVariable("SUPERMARKET_LOCATION_ID"),
		WebhookSubscribers:    splitList(goDotEnvVariable("WEBHOOK_SUBSCRIBERS")),
		StatusReportSchedule:  goDotEnvVariable("STATUS_REPORT_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// splitList parses a comma-separated env value into a slice, dropping
// empty entries so an unset variable yields no subscribers.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&controlorderrepo.ControlOrderDTO{},
		&auditrepo.AuditEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := adapterhttp.NewServer(
		app.CreateStartWorkOrderCommandHandler(),
		app.CreateCompleteWorkOrderCommandHandler(),
		app.CreateHaltWorkOrderCommandHandler(),
		app.CreateResumeWorkOrderCommandHandler(),
		app.CreateMarkWaitingForPartsCommandHandler(),
		app.CreateGetWorkOrderQueryHandler(),
		app.CreateGetControlOrderProgressQueryHandler(),
		app.CreateGetWorkOrderStatusSummaryQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
