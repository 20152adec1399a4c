package model

import "time"

// Config holds the process-wide configuration. The bot token and database
// path come from the environment, falling back to a local config file.
type Config struct {
	BotToken     string
	AppID        string
	DatabasePath string
	ShopDataPath string
	LogChannelID string

	// SweepInterval is how often the temp-ban sweeper polls for expired
	// rows. Defaults to five minutes.
	SweepInterval time.Duration

	// DashboardAddr is the listen address of the read-only dashboard API.
	// Empty disables the dashboard.
	DashboardAddr string
}
