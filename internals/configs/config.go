package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string

	// App is populated by LoadEnv; handlers read it after bootstrap.
	App Config
)

type Config struct {
	Env      string         `mapstructure:"env"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Media    MediaConfig    `mapstructure:"media"`
	Midtrans MidtransConfig `mapstructure:"midtrans"`
	SendGrid SendGridConfig `mapstructure:"sendgrid"`
	Library  LibraryConfig  `mapstructure:"library"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CORSOrigins    []string      `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
}

type AuthConfig struct {
	JWTSecret        string        `mapstructure:"jwt_secret"`
	JWTRefreshSecret string        `mapstructure:"jwt_refresh_secret"`
	AccessTTL        time.Duration `mapstructure:"access_ttl"`
	RefreshTTL       time.Duration `mapstructure:"refresh_ttl"`
	GoogleClientID   string        `mapstructure:"google_client_id"`
	BlacklistTTLDays int           `mapstructure:"blacklist_ttl_days"`
	DeleteConfirmTTL time.Duration `mapstructure:"delete_confirm_ttl"`
}

type MediaConfig struct {
	Driver       string  `mapstructure:"driver"` // local | oss
	LocalDir     string  `mapstructure:"local_dir"`
	PublicPrefix string  `mapstructure:"public_prefix"`
	MaxWidth     int     `mapstructure:"max_width"`
	MaxHeight    int     `mapstructure:"max_height"`
	Quality      float32 `mapstructure:"quality"`
	OSSEndpoint  string  `mapstructure:"oss_endpoint"`
	OSSBucket    string  `mapstructure:"oss_bucket"`
	OSSKeyID     string  `mapstructure:"oss_key_id"`
	OSSKeySecret string  `mapstructure:"oss_key_secret"`
	OSSPublicURL string  `mapstructure:"oss_public_url"`
}

type MidtransConfig struct {
	ServerKey     string `mapstructure:"server_key"`
	UseProduction bool   `mapstructure:"use_prod"`
}

type SendGridConfig struct {
	APIKey    string `mapstructure:"api_key"`
	FromName  string `mapstructure:"from_name"`
	FromEmail string `mapstructure:"from_email"`
}

type LibraryConfig struct {
	FinePerDay float64 `mapstructure:"fine_per_day"`
}

// FineRate is the daily late fine as an amount.
func (l LibraryConfig) FineRate() decimal.Decimal {
	return decimal.NewFromFloat(l.FinePerDay).Round(2)
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found, using system environment")
	} else {
		log.Println("[INFO] .env loaded")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}
	App = *cfg

	JWTSecret = cfg.Auth.JWTSecret
	JWTRefreshSecret = cfg.Auth.JWTRefreshSecret
	GoogleClientID = cfg.Auth.GoogleClientID

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		log.Println("[WARN] JWT_REFRESH_SECRET is not set")
	}
}

// Load reads the environment (already enriched by .env) through viper.
// Keys are flattened with "_" so database.host binds DATABASE_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// legacy names kept working
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("database.host", "DB_HOST")
	_ = v.BindEnv("database.port", "DB_PORT")
	_ = v.BindEnv("database.user", "DB_USER")
	_ = v.BindEnv("database.password", "DB_PASSWORD")
	_ = v.BindEnv("database.name", "DB_NAME")
	_ = v.BindEnv("database.sslmode", "DB_SSLMODE")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("auth.jwt_refresh_secret", "JWT_REFRESH_SECRET")
	_ = v.BindEnv("auth.google_client_id", "GOOGLE_CLIENT_ID")
	_ = v.BindEnv("auth.blacklist_ttl_days", "TOKEN_BLACKLIST_TTL_DAYS")
	_ = v.BindEnv("midtrans.server_key", "MIDTRANS_SERVER_KEY")
	_ = v.BindEnv("midtrans.use_prod", "MIDTRANS_USE_PROD")
	_ = v.BindEnv("sendgrid.api_key", "SENDGRID_API_KEY")
	_ = v.BindEnv("library.fine_per_day", "LIBRARY_FINE_PER_DAY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if raw := v.GetString("server.cors_origins"); raw != "" && len(cfg.Server.CORSOrigins) <= 1 {
		cfg.Server.CORSOrigins = splitCSV(raw)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.request_timeout", 5*time.Second)
	v.SetDefault("server.cors_origins", "http://localhost:5173")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_idle_time", 60*time.Second)
	v.SetDefault("database.conn_max_lifetime", 10*time.Minute)
	v.SetDefault("database.slow_threshold", 200*time.Millisecond)

	v.SetDefault("auth.access_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("auth.blacklist_ttl_days", 7)
	v.SetDefault("auth.delete_confirm_ttl", 5*time.Minute)

	v.SetDefault("media.driver", "local")
	v.SetDefault("media.local_dir", "./uploads")
	v.SetDefault("media.public_prefix", "/uploads")
	v.SetDefault("media.max_width", 1600)
	v.SetDefault("media.max_height", 1600)
	v.SetDefault("media.quality", 80)
	// unmarshal only sees keys viper knows about
	for _, k := range []string{
		"database.user", "database.password", "database.name",
		"auth.jwt_secret", "auth.jwt_refresh_secret", "auth.google_client_id",
		"media.oss_endpoint", "media.oss_bucket", "media.oss_key_id", "media.oss_key_secret", "media.oss_public_url",
		"midtrans.server_key", "sendgrid.api_key",
	} {
		v.SetDefault(k, "")
	}
	v.SetDefault("midtrans.use_prod", false)

	v.SetDefault("sendgrid.from_name", "School Office")
	v.SetDefault("sendgrid.from_email", "no-reply@school.local")
	v.SetDefault("library.fine_per_day", 0)
}

func splitCSV(s string) []string {
	out := make([]string, 0, 4)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
