package commands

import (
	"time"

	"dkscrape-backend/lib/configutil"
	"dkscrape-backend/lib/restyutil"
	"dkscrape-backend/lib/scrapers/draftkings"
	"dkscrape-backend/lib/serviceutil"
)

type RetryConfig struct {
	Count       int `json:"count"`
	WaitSeconds int `json:"wait_seconds"`
}

type Config struct {
	// default sport for single-run commands
	Sport string `json:"sport"`
	// sports the daemon cycles through
	Sports          []string    `json:"sports"`
	IntervalMinutes int         `json:"interval_minutes"`
	Cron            string      `json:"cron"`
	Retry           RetryConfig `json:"retry"`

	// pipeline filters
	GameTypeIDs []int64  `json:"game_type_ids"`
	SlateTypes  []string `json:"slate_types"`
	GameSetTags []string `json:"game_set_tags"`

	// fail a run when a stage's upstream produced nothing
	StrictDeps bool `json:"strict_deps"`
}

var defaultConfig = Config{
	Sport:           "NFL",
	Sports:          []string{"NFL"},
	IntervalMinutes: 60,
	Retry:           RetryConfig{Count: 3, WaitSeconds: 1},
}

func readConfig() Config {
	cfg, err := configutil.ReadOrDefault[Config]("dkscrape.json5", defaultConfig)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func createClient(cfg Config) *draftkings.Client {
	if *verbose {
		draftkings.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/dkscrape"))
	}

	client, err := draftkings.NewClient(draftkings.ClientOptions{
		Retry: restyutil.RetryOptions{
			Count: cfg.Retry.Count,
			Wait:  time.Duration(cfg.Retry.WaitSeconds) * time.Second,
		},
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}
	return client
}
