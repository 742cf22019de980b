// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Security SecurityConfig `mapstructure:"security"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Printing PrintingConfig `mapstructure:"printing"`
	App      AppConfig      `mapstructure:"app"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host" validate:"required"`
	Port         string        `mapstructure:"port" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// SecurityConfig represents security configuration
type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"required"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// PrintingConfig groups everything related to document rendering and
// printer routing.
type PrintingConfig struct {
	Width            int                      `mapstructure:"width"`
	Currency         string                   `mapstructure:"currency"`
	LogoPath         string                   `mapstructure:"logo_path"`
	MaxLogoWidthDots int                      `mapstructure:"max_logo_width_dots"`
	Routes           PrinterRoutes            `mapstructure:"routes"`
	Printers         map[string]PrinterConfig `mapstructure:"printers"`
}

// PrinterRoutes maps document categories to named printer entries. An
// empty report entry falls back to the bill printer.
type PrinterRoutes struct {
	Bar     string `mapstructure:"bar"`
	Kitchen string `mapstructure:"kitchen"`
	Bill    string `mapstructure:"bill"`
	Report  string `mapstructure:"report"`
}

// PrinterConfig describes how one physical printer is reached.
type PrinterConfig struct {
	Connection string `mapstructure:"connection"` // tcp, serial or usb

	// TCP
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Serial
	Device   string `mapstructure:"device"`
	BaudRate int    `mapstructure:"baud_rate"`

	// USB
	VendorID  string `mapstructure:"vendor_id"`
	ProductID string `mapstructure:"product_id"`
	Endpoint  int    `mapstructure:"endpoint"`

	Timeout      time.Duration `mapstructure:"timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// BeepOnly skips the trailing paper cut and sounds the buzzer
	// instead; a degraded mode for printers without a cutter.
	BeepOnly bool `mapstructure:"beep_only"`
}

// AppConfig represents application metadata
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Version     string `mapstructure:"version" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required"`
	Debug       bool   `mapstructure:"debug"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/receipt-service")

	// Environment variable support
	viper.SetEnvPrefix("RECEIPT_SERVICE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Running on defaults plus environment variables is a supported
	// setup; only a malformed config file is fatal
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8085")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age", 28)
	viper.SetDefault("logging.compress", true)

	// Printing defaults
	viper.SetDefault("printing.width", 48)
	viper.SetDefault("printing.currency", "R$")
	viper.SetDefault("printing.max_logo_width_dots", 384)
	viper.SetDefault("printing.routes.bar", "")
	viper.SetDefault("printing.routes.kitchen", "")
	viper.SetDefault("printing.routes.bill", "")
	viper.SetDefault("printing.routes.report", "")

	// App defaults
	viper.SetDefault("app.name", "receipt-service")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Host == "" {
		return fmt.Errorf("server.host is required")
	}
	if config.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	// Validate environment
	validEnvs := []string{"development", "staging", "production", "test"}
	isValidEnv := false
	for _, env := range validEnvs {
		if config.App.Environment == env {
			isValidEnv = true
			break
		}
	}
	if !isValidEnv {
		return fmt.Errorf("app.environment must be one of: %v", validEnvs)
	}

	// Validate logging level
	validLevels := []string{"debug", "info", "warn", "error", "fatal"}
	isValidLevel := false
	for _, level := range validLevels {
		if config.Logging.Level == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	if config.Printing.Width <= 0 {
		return fmt.Errorf("printing.width must be positive")
	}

	for name, printer := range config.Printing.Printers {
		if err := validatePrinter(name, printer); err != nil {
			return err
		}
	}

	return nil
}

// validatePrinter validates one printer registry entry
func validatePrinter(name string, printer PrinterConfig) error {
	switch printer.Connection {
	case "tcp":
		if printer.Host == "" {
			return fmt.Errorf("printer %q: tcp host is required", name)
		}
		if printer.Port < 0 || printer.Port > 65535 {
			return fmt.Errorf("printer %q: invalid port number: %d", name, printer.Port)
		}
	case "serial":
		if printer.Device == "" {
			return fmt.Errorf("printer %q: serial device is required", name)
		}
	case "usb":
		if printer.VendorID == "" || printer.ProductID == "" {
			return fmt.Errorf("printer %q: usb vendor_id and product_id are required", name)
		}
	default:
		return fmt.Errorf("printer %q: unsupported connection type: %s", name, printer.Connection)
	}
	return nil
}

// PrinterFor resolves the printer name for a document category. The
// report category shares the bill printer when not set explicitly.
func (c *Config) PrinterFor(category string) string {
	switch category {
	case "bar":
		return c.Printing.Routes.Bar
	case "kitchen":
		return c.Printing.Routes.Kitchen
	case "bill":
		return c.Printing.Routes.Bill
	case "report":
		if c.Printing.Routes.Report != "" {
			return c.Printing.Routes.Report
		}
		return c.Printing.Routes.Bill
	default:
		return ""
	}
}

// GetServerAddr returns the server address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment checks if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
