// internal/config/config.go
//
// Configuration shared by the console, GUI and web front ends.
//
// Sources, lowest precedence first:
//   1. Built-in defaults (Default).
//   2. Optional YAML file: path argument, else $WORDLE_CONFIG.
//   3. Environment variables (a `.env` file in the working directory is
//      loaded first, without overriding variables already set).
//
// Environment variables:
//   LOG_LEVEL            zerolog level name (default "info")
//   WORDS_ANSWERS_FILE   answer pool file
//   WORDS_ALLOWED_FILE   valid guesses file
//   WORDLE_SHOW_SECRET   console: print the secret at session start
//   WORDLE_REVEAL_DELAY  console: pause between feedback lines (e.g. "300ms")
//   PORT, CLIENT_ORIGIN, DB_PATH, JWT_SECRET, GAME_TOKEN_TTL, SESSION_TTL,
//   DAILY_SALT, ALLOW_FIXED_ANSWER, COOKIE_SECURE   web server settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const devTokenSecret = "dev_secret_change_me"

type Config struct {
	Version  int    `yaml:"version"`
	LogLevel string `yaml:"log_level"`

	Words struct {
		AnswersFile string `yaml:"answers_file"`
		AllowedFile string `yaml:"allowed_file"`
	} `yaml:"words"`

	Console struct {
		ShowSecret  bool          `yaml:"show_secret"`
		RevealDelay time.Duration `yaml:"reveal_delay"`
	} `yaml:"console"`

	Server struct {
		Port             string        `yaml:"port"`
		ClientOrigin     string        `yaml:"client_origin"`
		DBPath           string        `yaml:"db_path"` // empty: in-memory sessions
		TokenSecret      string        `yaml:"token_secret"`
		TokenTTL         time.Duration `yaml:"token_ttl"`
		SessionTTL       time.Duration `yaml:"session_ttl"`
		DailySalt        string        `yaml:"daily_salt"`
		AllowFixedAnswer bool          `yaml:"allow_fixed_answer"`
		SecureCookies    bool          `yaml:"secure_cookies"`
	} `yaml:"server"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{Version: 1, LogLevel: "info"}
	c.Console.ShowSecret = true
	c.Console.RevealDelay = 300 * time.Millisecond
	c.Server.Port = "5175"
	c.Server.ClientOrigin = "http://localhost:5173"
	c.Server.TokenSecret = devTokenSecret
	c.Server.TokenTTL = 24 * time.Hour
	c.Server.SessionTTL = 24 * time.Hour
	c.Server.DailySalt = "local_dev_salt"
	return c
}

// Load builds the configuration from defaults, the optional YAML file at
// path (or $WORDLE_CONFIG) and the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv("WORDLE_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.Server.TokenTTL <= 0 {
		return nil, errors.New("config: token ttl must be positive")
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if c.Version != 1 {
		return fmt.Errorf("config: unsupported version: %d", c.Version)
	}
	return nil
}

func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	var firstErr error
	boolean := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = b
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = d
		}
	}

	str("LOG_LEVEL", &c.LogLevel)
	str("WORDS_ANSWERS_FILE", &c.Words.AnswersFile)
	str("WORDS_ALLOWED_FILE", &c.Words.AllowedFile)
	boolean("WORDLE_SHOW_SECRET", &c.Console.ShowSecret)
	duration("WORDLE_REVEAL_DELAY", &c.Console.RevealDelay)

	str("PORT", &c.Server.Port)
	str("CLIENT_ORIGIN", &c.Server.ClientOrigin)
	str("DB_PATH", &c.Server.DBPath)
	str("JWT_SECRET", &c.Server.TokenSecret)
	duration("GAME_TOKEN_TTL", &c.Server.TokenTTL)
	duration("SESSION_TTL", &c.Server.SessionTTL)
	str("DAILY_SALT", &c.Server.DailySalt)
	boolean("ALLOW_FIXED_ANSWER", &c.Server.AllowFixedAnswer)
	boolean("COOKIE_SECURE", &c.Server.SecureCookies)
	return firstErr
}

// UsingDevSecret reports whether the token secret is the built-in default.
func (c *Config) UsingDevSecret() bool { return c.Server.TokenSecret == devTokenSecret }
