package config

import (
	"log/slog"
	"os"

	"github.com/glowpod/order-svc/internal/notifier"
	"github.com/glowpod/order-svc/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings read once at startup. Components receive
// their piece of it by constructor parameter instead of looking values
// up from the environment at request time.
type Config struct {
	Mail                    notifier.MailConfig
	NotificationEndpointURL string
}

func MustInit() *Config {
	if err := godotenv.Load("./.env"); err != nil {
		panic("error while loading .env file: " + err.Error())
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/order-svc")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		panic("error while reading config file: " + err.Error())
	}
	SetupLogger()

	cfg := &Config{
		Mail: notifier.MailConfig{
			APIKey:    os.Getenv("RESEND_API_KEY"),
			FromEmail: os.Getenv("RESEND_FROM_EMAIL"),
			ToEmail:   os.Getenv("RESEND_TO_EMAIL"),
		},
		NotificationEndpointURL: viper.GetString("notification.endpoint_url"),
	}

	// The process still serves with an incomplete mail configuration;
	// every notification request is rejected until it is fixed.
	if !cfg.Mail.Complete() {
		slog.Warn("Mail configuration incomplete, notification requests will fail")
	}

	return cfg
}

func SetupLogger() {
	handler := logger.NewHandler(nil)
	log := slog.New(handler)
	slog.SetDefault(log)
}
