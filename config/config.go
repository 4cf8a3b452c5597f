package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	OTP    OTPConfig
	Notify NotifyConfig
}

type AppConfig struct {
	Port          string
	Env           string
	AdminEmail    string
	MigrationsDir string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type OTPConfig struct {
	TTL        time.Duration
	CodeLength int
}

type NotifyConfig struct {
	SMSGatewayURL string
	SMSAPIKey     string
	SMSSenderID   string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	EmailFrom     string
	// Stock count at or below which a pharmacy batch counts as low stock.
	LowStockThreshold int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	otpTTL, err := time.ParseDuration(viper.GetString("OTP_TTL"))
	if err != nil {
		otpTTL = 5 * time.Minute
	}

	otpCodeLength := viper.GetInt("OTP_CODE_LENGTH")
	if otpCodeLength == 0 {
		otpCodeLength = 6
	}

	lowStockThreshold := viper.GetInt("LOW_STOCK_THRESHOLD")
	if lowStockThreshold == 0 {
		lowStockThreshold = 10
	}

	migrationsDir := viper.GetString("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	config := &Config{
		App: AppConfig{
			Port:          viper.GetString("APP_PORT"),
			Env:           viper.GetString("APP_ENV"),
			AdminEmail:    viper.GetString("ADMIN_EMAIL"),
			MigrationsDir: migrationsDir,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		OTP: OTPConfig{
			TTL:        otpTTL,
			CodeLength: otpCodeLength,
		},
		Notify: NotifyConfig{
			SMSGatewayURL:     viper.GetString("SMS_GATEWAY_URL"),
			SMSAPIKey:         viper.GetString("SMS_API_KEY"),
			SMSSenderID:       viper.GetString("SMS_SENDER_ID"),
			SMTPHost:          viper.GetString("SMTP_HOST"),
			SMTPPort:          viper.GetString("SMTP_PORT"),
			SMTPUser:          viper.GetString("SMTP_USER"),
			SMTPPassword:      viper.GetString("SMTP_PASSWORD"),
			EmailFrom:         viper.GetString("EMAIL_FROM"),
			LowStockThreshold: lowStockThreshold,
		},
	}

	return config, nil
}
