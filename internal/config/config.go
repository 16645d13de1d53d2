package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	SessionSecret       string
	DatabaseURL         string
	RedisURL            string
	SupabaseURL         string // e.g. https://xyz.supabase.co — used for content image uploads (storage API)
	SupabaseSecretKey   string // must be service_role key, not anon key
	SMTPHost            string
	SMTPPort            int
	SMTPSecure          bool
	SMTPUser            string
	SMTPPass            string
	FromEmail           string // sender address; defaults to SMTP_USER
	VerifyBaseURL       string // base URL for certificate verification links
	Timezone            string // IANA zone for day-boundary stats
	FrontendURLEndsWith string
	DevPassword         string
	AllowCrossSiteDev   bool
	HealthAdminKey      string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "5050"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL")
	switch env {
	case "production":
		if v := viper.GetString("DATABASE_URL_PROD"); v != "" {
			dbURL = v
		}
	case "test":
		if v := viper.GetString("DATABASE_URL_TEST"); v != "" {
			dbURL = v
		}
	default:
		if v := viper.GetString("DATABASE_URL_DEV"); v != "" {
			dbURL = v
		}
	}
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	smtpPort := viper.GetInt("SMTP_PORT")
	if smtpPort == 0 {
		smtpPort = 587
	}
	fromEmail := strings.TrimSpace(viper.GetString("FROM_EMAIL"))
	if fromEmail == "" {
		fromEmail = strings.TrimSpace(viper.GetString("SMTP_USER"))
	}

	return &Config{
		Env:                 env,
		Port:                port,
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		DatabaseURL:         dbURL,
		RedisURL:            viper.GetString("REDIS_URL"),
		SupabaseURL:         strings.TrimSpace(viper.GetString("SUPABASE_URL")),
		SupabaseSecretKey:   strings.TrimSpace(viper.GetString("SUPABASE_SERVICE_ROLE_KEY")),
		SMTPHost:            strings.TrimSpace(viper.GetString("SMTP_HOST")),
		SMTPPort:            smtpPort,
		SMTPSecure:          strings.EqualFold(viper.GetString("SMTP_SECURE"), "true"),
		SMTPUser:            strings.TrimSpace(viper.GetString("SMTP_USER")),
		SMTPPass:            strings.TrimSpace(viper.GetString("SMTP_PASS")),
		FromEmail:           fromEmail,
		VerifyBaseURL:       verifyBaseURL(viper.GetString("VERIFY_BASE_URL")),
		Timezone:            timezone(viper.GetString("APP_TIMEZONE")),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev:   strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
	}, nil
}

// SMTPReady reports whether the SMTP transport can be constructed from env.
func (c *Config) SMTPReady() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func timezone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Asia/Kolkata"
	}
	return s
}

func verifyBaseURL(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), "/")
	if s == "" {
		return "https://ngo-admin-thannmann.onrender.com"
	}
	return s
}
