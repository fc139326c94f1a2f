package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/onboarding/backend/internal/infrastructure/printing"
	"github.com/onboarding/backend/internal/infrastructure/session"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Log       LogConfig
	SMTP      SMTPConfig
	Company   CompanyConfig
	Documents DocumentsConfig
	PDF       PDFConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Version string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	MaxBodySize    int64 // also caps the appointment PDF upload
	TrustedProxies []string

	// CORSAllowOrigins applies to the JSON API only; empty disables cross-origin access
	CORSAllowOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// SMTPConfig holds the default email account copied into every new session
type SMTPConfig struct {
	Host        string
	Port        int
	SenderEmail string
	Password    string
	SenderName  string
	DefaultCC   string
	Timeout     time.Duration
}

// CompanyConfig holds the company identity printed on letters and emails
type CompanyConfig struct {
	Name               string
	FullName           string
	HRManagerName      string
	HRManagerTitle     string
	JoiningFormURL     string
	AssetReturnAddress string
	AssetContactName   string
	AssetContactPhone  string
}

// DocumentsConfig locates the branding images and the appointment template
type DocumentsConfig struct {
	AssetsDir           string
	AppointmentTemplate string
	HeaderImage         string
	FooterImage         string
	SignatureImage      string
}

// PDFConfig holds the PDF backend chain configuration
type PDFConfig struct {
	Strategies      []string
	Timeout         time.Duration
	WkhtmltopdfPath string
	ChromeRemoteURL string
	ChromeNoSandbox bool
}

// SessionConfig holds browser session settings
type SessionConfig struct {
	Backend             string // memory, redis
	TTL                 time.Duration
	CookieName          string
	CookieSecure        bool
	AllowMemoryFallback bool
}

// RateLimitConfig caps how often one client may send mail or render PDFs
type RateLimitConfig struct {
	Enabled     bool
	SendsPerMin int // per browser session, on routes that send mail or render PDFs
	APIPerMin   int // per client IP, on the JSON API
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool    // Whether to enable OpenTelemetry
	CollectorEndpoint string  // OTEL Collector endpoint (e.g., "localhost:4317")
	SamplingRatio     float64 // Sampling ratio (0.0-1.0, 1.0 = 100%)
	ServiceName       string
	Insecure          bool // Use insecure (non-TLS) connection (development only)
}

// legacyEnv maps config keys to the variable names older deployments export
var legacyEnv = map[string][]string{
	"smtp.host":         {"SMTP_SERVER"},
	"smtp.port":         {"SMTP_PORT"},
	"smtp.sender_email": {"SENDER_EMAIL", "DEFAULT_SENDER_EMAIL"},
	"smtp.password":     {"SENDER_PASSWORD", "SMTP_PASSWORD"},
	"smtp.sender_name":  {"SENDER_NAME", "DEFAULT_SENDER_NAME"},
}

const envPrefix = "ONBOARDING"

// Load loads configuration from .env, TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with ONBOARDING_ prefix (e.g., ONBOARDING_SMTP_PASSWORD)
// 2. Legacy variables (SMTP_SERVER, SENDER_EMAIL, ...)
// 3. config.toml
// 4. Built-in defaults
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range legacyEnv {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(append([]string{key, prefixed}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Env:     v.GetString("app.env"),
			Port:    v.GetString("app.port"),
			Version: v.GetString("app.version"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes: v.GetInt("http.max_header_bytes"),
			MaxBodySize:    v.GetInt64("http.max_body_size"),
			TrustedProxies: v.GetStringSlice("http.trusted_proxies"),

			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		SMTP: SMTPConfig{
			Host:        v.GetString("smtp.host"),
			Port:        v.GetInt("smtp.port"),
			SenderEmail: v.GetString("smtp.sender_email"),
			Password:    v.GetString("smtp.password"),
			SenderName:  v.GetString("smtp.sender_name"),
			DefaultCC:   v.GetString("smtp.default_cc"),
			Timeout:     v.GetDuration("smtp.timeout"),
		},
		Company: CompanyConfig{
			Name:               v.GetString("company.name"),
			FullName:           v.GetString("company.full_name"),
			HRManagerName:      v.GetString("company.hr_manager_name"),
			HRManagerTitle:     v.GetString("company.hr_manager_title"),
			JoiningFormURL:     v.GetString("company.joining_form_url"),
			AssetReturnAddress: v.GetString("company.asset_return_address"),
			AssetContactName:   v.GetString("company.asset_contact_name"),
			AssetContactPhone:  v.GetString("company.asset_contact_phone"),
		},
		Documents: DocumentsConfig{
			AssetsDir:           v.GetString("documents.assets_dir"),
			AppointmentTemplate: v.GetString("documents.appointment_template"),
			HeaderImage:         v.GetString("documents.header_image"),
			FooterImage:         v.GetString("documents.footer_image"),
			SignatureImage:      v.GetString("documents.signature_image"),
		},
		PDF: PDFConfig{
			Strategies:      v.GetStringSlice("pdf.strategies"),
			Timeout:         v.GetDuration("pdf.timeout"),
			WkhtmltopdfPath: v.GetString("pdf.wkhtmltopdf_path"),
			ChromeRemoteURL: v.GetString("pdf.chrome_remote_url"),
			ChromeNoSandbox: v.GetBool("pdf.chrome_no_sandbox"),
		},
		Session: SessionConfig{
			Backend:             v.GetString("session.backend"),
			TTL:                 v.GetDuration("session.ttl"),
			CookieName:          v.GetString("session.cookie_name"),
			CookieSecure:        v.GetBool("session.cookie_secure"),
			AllowMemoryFallback: v.GetBool("session.allow_memory_fallback"),
		},
		RateLimit: RateLimitConfig{
			Enabled:     v.GetBool("rate_limit.enabled"),
			SendsPerMin: v.GetInt("rate_limit.sends_per_min"),
			APIPerMin:   v.GetInt("rate_limit.api_per_min"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "onboarding"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "dev"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	// Sends wait on SMTP and PDF rendering
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 90 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 10 << 20 // 10MB
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.SMTP.Host == "" {
		cfg.SMTP.Host = "smtp.gmail.com"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.SMTP.SenderName == "" {
		cfg.SMTP.SenderName = "Rapid Innovation HR"
	}
	if cfg.SMTP.DefaultCC == "" {
		cfg.SMTP.DefaultCC = "hr@rapidinnovation.com"
	}
	if cfg.SMTP.Timeout == 0 {
		cfg.SMTP.Timeout = 30 * time.Second
	}
	if cfg.Company.Name == "" {
		cfg.Company.Name = "Rapid Innovation"
	}
	if cfg.Company.FullName == "" {
		cfg.Company.FullName = "Rapid Innovation Pvt. Ltd."
	}
	if cfg.Company.HRManagerName == "" {
		cfg.Company.HRManagerName = "Aarushi Sharma"
	}
	if cfg.Company.HRManagerTitle == "" {
		cfg.Company.HRManagerTitle = "Assistant Manager HR"
	}
	if cfg.Company.JoiningFormURL == "" {
		cfg.Company.JoiningFormURL = "https://docs.google.com/forms/d/1TVQyWZzwzIGxIB6opxZxk8GJOI_HoF15-4Oa7Q4zEjA/edit?ts=61fb8f9f"
	}
	if cfg.Company.AssetReturnAddress == "" {
		cfg.Company.AssetReturnAddress = "Hotel North 39, Junas Wada, near River Bridge, Mandrem, Goa 403524"
	}
	if cfg.Company.AssetContactName == "" {
		cfg.Company.AssetContactName = "Armond Fernandes"
	}
	if cfg.Company.AssetContactPhone == "" {
		cfg.Company.AssetContactPhone = "9823268663"
	}
	if cfg.Documents.AssetsDir == "" {
		cfg.Documents.AssetsDir = "."
	}
	if cfg.Documents.AppointmentTemplate == "" {
		cfg.Documents.AppointmentTemplate = "appointment_letter.txt"
	}
	if cfg.Documents.HeaderImage == "" {
		cfg.Documents.HeaderImage = "images/header.png"
	}
	if cfg.Documents.FooterImage == "" {
		cfg.Documents.FooterImage = "images/footer.png"
	}
	if cfg.Documents.SignatureImage == "" {
		cfg.Documents.SignatureImage = "images/signature.png"
	}
	if len(cfg.PDF.Strategies) == 0 {
		cfg.PDF.Strategies = printing.DefaultStrategies()
	}
	if cfg.PDF.Timeout == 0 {
		cfg.PDF.Timeout = 60 * time.Second
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = session.BackendMemory
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = session.DefaultTTL
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "onboarding_session"
	}
	if cfg.RateLimit.SendsPerMin == 0 {
		cfg.RateLimit.SendsPerMin = 20
	}
	if cfg.RateLimit.APIPerMin == 0 {
		cfg.RateLimit.APIPerMin = 60
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317" // Default gRPC endpoint
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port must be between 1 and 65535, got %d", c.SMTP.Port)
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		return fmt.Errorf("redis.port must be between 1 and 65535, got %d", c.Redis.Port)
	}

	for _, s := range c.PDF.Strategies {
		if !printing.IsKnownStrategy(s) {
			return fmt.Errorf("pdf.strategies: unknown strategy %q", s)
		}
	}

	switch c.Session.Backend {
	case session.BackendMemory, session.BackendRedis:
	default:
		return fmt.Errorf("session.backend must be %q or %q, got %q",
			session.BackendMemory, session.BackendRedis, c.Session.Backend)
	}

	if c.RateLimit.SendsPerMin < 0 || c.RateLimit.APIPerMin < 0 {
		return fmt.Errorf("rate_limit limits must not be negative")
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	if c.App.Env == "production" {
		if c.SMTP.SenderEmail == "" || c.SMTP.Password == "" {
			return fmt.Errorf("smtp.sender_email and smtp.password are required in production")
		}
		if !c.Session.CookieSecure {
			return fmt.Errorf("session.cookie_secure must be true in production (HTTPS required for secure cookies)")
		}
	}

	return nil
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
