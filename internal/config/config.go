package config

import (
	"context"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	awsclient "github.com/feeddigital/cursos-api/internal/client/aws"
	"github.com/feeddigital/cursos-api/internal/constants"
	"github.com/feeddigital/cursos-api/internal/helpers"
)

// Config holds all application configuration values
type Config struct {
	Stage     string
	Port      string
	GinMode   string
	Mail      MailConfig
	CORS      CORSConfig
	Static    StaticConfig
	Links     LinksConfig
	RateLimit RateLimitConfig
	Proxy     ProxyConfig
}

// MailConfig describes the outbound transport and the fixed mailboxes.
type MailConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	AdminEmail  string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPTLSMode  string

	ResendAPIKey string
}

// CORSConfig lists the front-end origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// AllowAll reports whether the wildcard origin was configured.
func (c CORSConfig) AllowAll() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// StaticConfig enables serving a directory of static files.
type StaticConfig struct {
	Dir    string
	Prefix string
}

// LinksConfig holds the links embedded in the intro class welcome email.
type LinksConfig struct {
	IntroVideoURL string
	EnrollURL     string
}

// RateLimitConfig configures the per-client limiter on form routes.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// ProxyConfig controls which hops may report the caller address. With no
// trusted proxies and no platform header the TCP peer address is used.
type ProxyConfig struct {
	TrustedProxies  []string
	TrustedPlatform string
}

// SecretResolver resolves a secret from an ARN env var with a plain env var fallback.
type SecretResolver interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// envSecrets resolves secrets from plain environment variables only.
type envSecrets struct {
	getenv func(string) string
}

func (e envSecrets) GetSecretString(_ context.Context, _ string, fallbackEnvVar string) (string, error) {
	if v := e.getenv(fallbackEnvVar); v != "" {
		return v, nil
	}
	return "", errors.Errorf("environment variable %s is not set", fallbackEnvVar)
}

// LoadDotEnv loads the given files (".env" when none) into the process
// environment. Missing files are ignored; existing variables are kept.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, "failed to load %s", name)
		}
	}
	return nil
}

// FromEnvironment builds the configuration from the process environment.
// Secrets Manager is consulted only when an *_ARN variable is set. Call
// LoadDotEnv first to pick up a local .env file.
func FromEnvironment(ctx context.Context) (*Config, error) {
	var secrets SecretResolver = envSecrets{getenv: os.Getenv}
	if os.Getenv("EMAIL_PASS_ARN") != "" || os.Getenv("RESEND_API_KEY_ARN") != "" {
		client, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize AWS Secrets Manager client")
		}
		secrets = client
	}

	return Load(ctx, os.Getenv, secrets)
}

// Load builds and validates the configuration using getenv for plain values
// and secrets for credentials.
func Load(ctx context.Context, getenv func(string) string, secrets SecretResolver) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if secrets == nil {
		secrets = envSecrets{getenv: getenv}
	}
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:    env("PORT", constants.DefaultPort),
		GinMode: getenv("GIN_MODE"),
		Static: StaticConfig{
			Dir:    env("STATIC_DIR", ""),
			Prefix: env("STATIC_PREFIX", constants.DefaultStaticPrefix),
		},
		Links: LinksConfig{
			IntroVideoURL: env("INTRO_VIDEO_URL", constants.DefaultIntroVideoURL),
			EnrollURL:     env("ENROLL_URL", constants.DefaultEnrollURL),
		},
	}
	var err error
	if cfg.Stage, err = helpers.ParseStage(getenv("STAGE")); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RequestsPerSecond, err = envInt(getenv, "RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = envInt(getenv, "RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}

	cfg.CORS.AllowedOrigins = collectOrigins(getenv("FRONT_DEV"), getenv("FRONT_PROD"), getenv("CORS_ALLOWED_ORIGINS"))
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, errors.Errorf("invalid CORS origin '%s': must start with http:// or https://", origin)
		}
	}

	cfg.Proxy.TrustedPlatform = env("TRUSTED_PLATFORM", "")
	for _, proxy := range strings.Split(getenv("TRUSTED_PROXIES"), ",") {
		proxy = strings.TrimSpace(proxy)
		if proxy == "" {
			continue
		}
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return nil, errors.Errorf("invalid TRUSTED_PROXIES entry '%s': must be an IP or CIDR", proxy)
			}
		}
		cfg.Proxy.TrustedProxies = append(cfg.Proxy.TrustedProxies, proxy)
	}

	user := env("EMAIL_USER", "")
	cfg.Mail = MailConfig{
		Provider:    strings.ToLower(env("MAIL_PROVIDER", constants.MailProviderSMTP)),
		FromAddress: env("EMAIL_FROM_ADDRESS", user),
		FromName:    env("EMAIL_FROM_NAME", constants.DefaultFromName),
		AdminEmail:  env("ADMIN_EMAIL", constants.DefaultAdminEmail),
		SMTPHost:    env("SMTP_HOST", constants.DefaultSMTPHost),
		SMTPUser:    user,
		SMTPTLSMode: strings.ToLower(env("SMTP_TLS_MODE", "auto")),
	}
	if cfg.Mail.SMTPPort, err = envInt(getenv, "SMTP_PORT", constants.DefaultSMTPPort); err != nil {
		return nil, err
	}

	switch cfg.Mail.Provider {
	case constants.MailProviderSMTP:
		if cfg.Mail.SMTPUser == "" {
			return nil, errors.New("EMAIL_USER is required for the smtp mail provider")
		}
		cfg.Mail.SMTPPassword, err = secrets.GetSecretString(ctx, "EMAIL_PASS_ARN", "EMAIL_PASS")
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve SMTP password")
		}
		switch cfg.Mail.SMTPTLSMode {
		case "auto", "starttls", "ssl", "none":
		default:
			return nil, errors.Errorf("invalid SMTP_TLS_MODE '%s'", cfg.Mail.SMTPTLSMode)
		}
	case constants.MailProviderResend:
		cfg.Mail.ResendAPIKey, err = secrets.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve Resend API key")
		}
		if cfg.Mail.FromAddress == "" {
			return nil, errors.New("EMAIL_FROM_ADDRESS or EMAIL_USER is required for the resend mail provider")
		}
	case constants.MailProviderLog:
	default:
		return nil, errors.Errorf("unknown MAIL_PROVIDER '%s'", cfg.Mail.Provider)
	}

	return cfg, nil
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func envInt(getenv func(string) string, key string, def int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, errors.Errorf("%s must be a positive integer, got '%s'", key, raw)
	}
	return v, nil
}

// collectOrigins merges the individual origin variables, dropping blanks and duplicates.
func collectOrigins(values ...string) []string {
	seen := make(map[string]bool)
	var origins []string
	for _, value := range values {
		for _, origin := range strings.Split(value, ",") {
			origin = strings.TrimRight(strings.TrimSpace(origin), "/")
			if origin == "" || seen[origin] {
				continue
			}
			seen[origin] = true
			origins = append(origins, origin)
		}
	}
	return origins
}
