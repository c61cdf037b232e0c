package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is loaded once at startup and
// treated as immutable for the process lifetime.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Access token config
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh token config
	JWTRefreshSecret           string
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string

	// External OAuth providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// Mail settings
	MailHost     string
	MailPort     string
	MailUser     string
	MailPassword string
	MailFrom     string

	// VNPay payment gateway
	VNPayTmnCode    string
	VNPayHashSecret string
	VNPayPaymentURL string
	VNPayReturnURL  string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "replace_this_with_strong_secret_in_production")
	viper.SetDefault("JWT_EXPIRY_DURATION", "15m")
	viper.SetDefault("JWT_ISSUER", "wishzy-backend")
	viper.SetDefault("JWT_REFRESH_SECRET", "replace_this_with_strong_refresh_secret_in_production")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "720h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("MAIL_HOST", "smtp.gmail.com")
	viper.SetDefault("MAIL_PORT", "587")
	viper.SetDefault("MAIL_USER", "")
	viper.SetDefault("MAIL_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "noreply@wishzy.com")
	viper.SetDefault("VNPAY_TMN_CODE", "")
	viper.SetDefault("VNPAY_HASH_SECRET", "")
	viper.SetDefault("VNPAY_PAYMENT_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html")
	viper.SetDefault("VNPAY_RETURN_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "replace_this_with_strong_secret_in_production" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 15 * time.Minute
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTRefreshSecret = viper.GetString("JWT_REFRESH_SECRET")
	if cfg.JWTRefreshSecret == "replace_this_with_strong_refresh_secret_in_production" {
		log.Println("Warning: JWT_REFRESH_SECRET not set. Using default insecure key.")
	}

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = 30 * 24 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.MailHost = viper.GetString("MAIL_HOST")
	cfg.MailPort = viper.GetString("MAIL_PORT")
	cfg.MailUser = viper.GetString("MAIL_USER")
	cfg.MailPassword = viper.GetString("MAIL_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	if cfg.MailUser == "" {
		log.Println("Warning: MAIL_USER not set. Transactional email will not function.")
	}

	cfg.VNPayTmnCode = viper.GetString("VNPAY_TMN_CODE")
	cfg.VNPayHashSecret = viper.GetString("VNPAY_HASH_SECRET")
	cfg.VNPayPaymentURL = viper.GetString("VNPAY_PAYMENT_URL")
	cfg.VNPayReturnURL = viper.GetString("VNPAY_RETURN_URL")
	if cfg.VNPayTmnCode == "" || cfg.VNPayHashSecret == "" {
		log.Println("Warning: VNPAY_TMN_CODE / VNPAY_HASH_SECRET not set. Payments will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
