package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	InventoryBaseURL      string
	SupermarketLocationID string
	WebhookSubscribers    []string
	StatusReportSchedule  string
}
