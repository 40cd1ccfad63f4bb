package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Mail drivers understood by the mail adapter factory.
const (
	MailDriverLog   = "log"
	MailDriverSMTP  = "smtp"
	MailDriverGmail = "gmail"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	PublicRateLimit    string // ulule formatted, e.g. "30-M"
	LoginRateLimit     string

	EnableLifecycleMonitors bool
	InvoiceSweepInterval    time.Duration
	ContractSweepInterval   time.Duration

	BusinessName              string
	BillingFromAddress        string
	ProposalsFromAddress      string
	LegalFromAddress          string
	OwnerFallbackEmail        string
	ProposalDefaultExpiryDays int
	PaymentLinkTTL            time.Duration
	PaymentLinkBaseURL        string

	MailDriver           string
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	GmailCredentialsFile string
	GmailSender          string

	PosthogAPIKey   string
	PosthogEndpoint string

	BootstrapAdminEmail    string
	BootstrapAdminName     string
	BootstrapAdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault(v, "JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PublicRateLimit = v.GetString("PUBLIC_RATE_LIMIT")
	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")

	cfg.EnableLifecycleMonitors = v.GetBool("ENABLE_LIFECYCLE_MONITORS")
	cfg.InvoiceSweepInterval = durationOrDefault(v, "INVOICE_SWEEP_INTERVAL", time.Hour)
	cfg.ContractSweepInterval = durationOrDefault(v, "CONTRACT_SWEEP_INTERVAL", 24*time.Hour)

	cfg.BusinessName = v.GetString("BUSINESS_NAME")
	cfg.BillingFromAddress = v.GetString("BILLING_FROM_ADDRESS")
	cfg.ProposalsFromAddress = v.GetString("PROPOSALS_FROM_ADDRESS")
	cfg.LegalFromAddress = v.GetString("LEGAL_FROM_ADDRESS")
	cfg.OwnerFallbackEmail = v.GetString("OWNER_FALLBACK_EMAIL")
	cfg.ProposalDefaultExpiryDays = v.GetInt("PROPOSAL_DEFAULT_EXPIRY_DAYS")
	if cfg.ProposalDefaultExpiryDays <= 0 {
		log.Printf("Warning: Invalid PROPOSAL_DEFAULT_EXPIRY_DAYS (%d). Defaulting to 30.\n", cfg.ProposalDefaultExpiryDays)
		cfg.ProposalDefaultExpiryDays = 30
	}
	cfg.PaymentLinkTTL = durationOrDefault(v, "PAYMENT_LINK_TTL", 30*24*time.Hour)
	cfg.PaymentLinkBaseURL = strings.TrimRight(v.GetString("PAYMENT_LINK_BASE_URL"), "/")

	cfg.MailDriver = strings.ToLower(v.GetString("MAIL_DRIVER"))
	switch cfg.MailDriver {
	case MailDriverLog, MailDriverSMTP, MailDriverGmail:
	default:
		log.Printf("Warning: Unknown MAIL_DRIVER ('%s'). Defaulting to %s.\n", cfg.MailDriver, MailDriverLog)
		cfg.MailDriver = MailDriverLog
	}
	cfg.SMTPHost = v.GetString("SMTP_HOST")
	cfg.SMTPPort = v.GetInt("SMTP_PORT")
	cfg.SMTPUsername = v.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = v.GetString("SMTP_PASSWORD")
	cfg.GmailCredentialsFile = v.GetString("GMAIL_CREDENTIALS_FILE")
	cfg.GmailSender = v.GetString("GMAIL_SENDER")

	if cfg.MailDriver == MailDriverSMTP && cfg.SMTPHost == "" {
		log.Println("Warning: MAIL_DRIVER=smtp but SMTP_HOST not set. Emails will fail to send.")
	}
	if cfg.MailDriver == MailDriverGmail && cfg.GmailCredentialsFile == "" {
		log.Println("Warning: MAIL_DRIVER=gmail but GMAIL_CREDENTIALS_FILE not set. Emails will fail to send.")
	}

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	cfg.BootstrapAdminEmail = v.GetString("BOOTSTRAP_ADMIN_EMAIL")
	cfg.BootstrapAdminName = v.GetString("BOOTSTRAP_ADMIN_NAME")
	cfg.BootstrapAdminPassword = v.GetString("BOOTSTRAP_ADMIN_PASSWORD")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "gigster-garage")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("PUBLIC_RATE_LIMIT", "30-M")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("ENABLE_LIFECYCLE_MONITORS", true)
	v.SetDefault("INVOICE_SWEEP_INTERVAL", "1h")
	v.SetDefault("CONTRACT_SWEEP_INTERVAL", "24h")
	v.SetDefault("BUSINESS_NAME", "Gigster Garage")
	v.SetDefault("BILLING_FROM_ADDRESS", "billing@gigstergarage.com")
	v.SetDefault("PROPOSALS_FROM_ADDRESS", "proposals@gigstergarage.com")
	v.SetDefault("LEGAL_FROM_ADDRESS", "legal@gigstergarage.com")
	v.SetDefault("OWNER_FALLBACK_EMAIL", "admin@gigstergarage.com")
	v.SetDefault("PROPOSAL_DEFAULT_EXPIRY_DAYS", 30)
	v.SetDefault("PAYMENT_LINK_TTL", "720h")
	v.SetDefault("PAYMENT_LINK_BASE_URL", "http://localhost:3000/pay")
	v.SetDefault("MAIL_DRIVER", MailDriverLog)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("GMAIL_CREDENTIALS_FILE", "")
	v.SetDefault("GMAIL_SENDER", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "")
	v.SetDefault("BOOTSTRAP_ADMIN_NAME", "Administrator")
	v.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
}

// durationOrDefault parses key as a duration, warning and falling back on bad input.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
