package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

// Load reads the process configuration. A local .env file is loaded first
// if present; environment variables take precedence over the defaults
// below.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.L().Info(".env file not found, relying on environment variables")
	}

	v := viper.New()
	v.SetDefault("database_path", "data/bot.db")
	v.SetDefault("shop_data_path", "data/shop.json")
	v.SetDefault("sweep_interval", "5m")
	v.SetDefault("dashboard_addr", ":8091")
	v.AutomaticEnv()

	token := v.GetString("bot_token")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}
	appID := v.GetString("app_id")
	if appID == "" {
		return nil, fmt.Errorf("APP_ID environment variable not set")
	}

	logChannelID := v.GetString("log_channel_id")
	if logChannelID == "" {
		logging.L().Warn("LOG_CHANNEL_ID not set, startup announcements disabled")
	}

	sweepInterval := v.GetDuration("sweep_interval")
	if sweepInterval <= 0 {
		sweepInterval = 5 * time.Minute
	}

	return &model.Config{
		BotToken:      token,
		AppID:         appID,
		DatabasePath:  v.GetString("database_path"),
		ShopDataPath:  v.GetString("shop_data_path"),
		LogChannelID:  logChannelID,
		SweepInterval: sweepInterval,
		DashboardAddr: v.GetString("dashboard_addr"),
	}, nil
}
