package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Meckano page specifics
	Browser BrowserConfig
	Page    PageConfig
	Skip    SkipRulesConfig
	WorkDay WorkDayConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string

	// FillRatePerMin bounds how often the fill endpoint may be hit.
	FillRatePerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BrowserConfig points at the Chrome instance that has the Meckano page open.
type BrowserConfig struct {
	DevToolsURL string // e.g. ws://127.0.0.1:9222
	EvalTimeout time.Duration
}

// PageConfig tunes the readiness/closure polling loops and write pacing.
type PageConfig struct {
	ReadyAttempts int
	ReadyInterval time.Duration
	CloseAttempts int
	CloseInterval time.Duration
	OpenSettle    time.Duration
	SubmitSettle  time.Duration
	WriteDelay    time.Duration
}

// SkipRulesConfig is the locale-specific row classification surface.
type SkipRulesConfig struct {
	WeekendLetters  []string
	HolidayToken    string
	HolidayEveToken string

	// AbsenceReasons maps the page's absence select values to skip reasons.
	// Value "0" means no absence and must not appear here.
	AbsenceReasons map[string]string
}

// WorkDayConfig is the default work window used when the caller omits times.
type WorkDayConfig struct {
	Start string
	End   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.FillRatePerMin = viper.GetInt("http_server.fill_rate_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Browser
	cfg.Browser.DevToolsURL = viper.GetString("browser.devtools_url")
	cfg.Browser.EvalTimeout = viper.GetDuration("browser.eval_timeout")
	if devtoolsURL := viper.GetString("devtools_url"); devtoolsURL != "" {
		cfg.Browser.DevToolsURL = devtoolsURL
	}

	// Page polling & pacing
	cfg.Page.ReadyAttempts = viper.GetInt("page.ready_attempts")
	cfg.Page.ReadyInterval = viper.GetDuration("page.ready_interval")
	cfg.Page.CloseAttempts = viper.GetInt("page.close_attempts")
	cfg.Page.CloseInterval = viper.GetDuration("page.close_interval")
	cfg.Page.OpenSettle = viper.GetDuration("page.open_settle")
	cfg.Page.SubmitSettle = viper.GetDuration("page.submit_settle")
	cfg.Page.WriteDelay = viper.GetDuration("page.write_delay")

	// Skip rules
	cfg.Skip.WeekendLetters = viper.GetStringSlice("skip.weekend_letters")
	cfg.Skip.HolidayToken = viper.GetString("skip.holiday_token")
	cfg.Skip.HolidayEveToken = viper.GetString("skip.holiday_eve_token")
	cfg.Skip.AbsenceReasons = viper.GetStringMapString("skip.absence_reasons")

	// Default work window
	cfg.WorkDay.Start = viper.GetString("work_day.start")
	cfg.WorkDay.End = viper.GetString("work_day.end")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.fill_rate_per_min", 6)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("browser.devtools_url", "ws://127.0.0.1:9222")
	viper.SetDefault("browser.eval_timeout", "10s")

	viper.SetDefault("page.ready_attempts", 30)
	viper.SetDefault("page.ready_interval", "500ms")
	viper.SetDefault("page.close_attempts", 10)
	viper.SetDefault("page.close_interval", "500ms")
	viper.SetDefault("page.open_settle", "1s")
	viper.SetDefault("page.submit_settle", "1500ms")
	viper.SetDefault("page.write_delay", "150ms")

	// Israeli locale: ו = Friday, ש = Saturday.
	viper.SetDefault("skip.weekend_letters", []string{"ו", "ש"})
	viper.SetDefault("skip.holiday_token", "חג")
	viper.SetDefault("skip.holiday_eve_token", "ערב חג")
	viper.SetDefault("skip.absence_reasons", map[string]string{
		"1": "Vacation",
		"2": "Sickness",
		"3": "Reserve Duty",
	})

	viper.SetDefault("work_day.start", "09:00")
	viper.SetDefault("work_day.end", "18:00")
}

func validate(cfg *Config) error {
	if cfg.Page.ReadyAttempts <= 0 {
		return fmt.Errorf("page.ready_attempts must be positive, got %d", cfg.Page.ReadyAttempts)
	}
	if cfg.Page.CloseAttempts <= 0 {
		return fmt.Errorf("page.close_attempts must be positive, got %d", cfg.Page.CloseAttempts)
	}
	if len(cfg.Skip.WeekendLetters) == 0 {
		return fmt.Errorf("skip.weekend_letters must not be empty")
	}
	if cfg.Skip.HolidayToken == "" || cfg.Skip.HolidayEveToken == "" {
		return fmt.Errorf("skip.holiday_token and skip.holiday_eve_token are required")
	}
	for code := range cfg.Skip.AbsenceReasons {
		if code == "0" {
			return fmt.Errorf("skip.absence_reasons must not map code \"0\" (no absence)")
		}
	}
	return nil
}
