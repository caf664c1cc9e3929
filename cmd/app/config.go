package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"rewards_miniapp/internal/repository"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Database repository.Config `yaml:"database"`
	Server   ServerConfig      `yaml:"server"`

	TelegramAuth TelegramAuthConfig `yaml:"telegramAuth"`
	Bot          BotConfig          `yaml:"bot"`
	Redis        RedisConfig        `yaml:"redis"`
	Admin        AdminConfig        `yaml:"admin"`
	Rewards      RewardsConfig      `yaml:"rewards"`
	Seed         SeedConfig         `yaml:"seed"`

	LogLevel string `yaml:"logLevel"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type TelegramAuthConfig struct {
	TelegramBotToken string `yaml:"telegramBotToken"`
	DebugMode        bool   `yaml:"debugMode"`
}

type BotConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Username  string `yaml:"username"`
	WebAppURL string `yaml:"webAppURL"`
	Debug     bool   `yaml:"debug"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AdminConfig struct {
	JWTSecret       string        `yaml:"jwtSecret"`
	TokenTTL        time.Duration `yaml:"tokenTTL"`
	DefaultUsername string        `yaml:"defaultUsername"`
	DefaultPassword string        `yaml:"defaultPassword"`
	DefaultEmail    string        `yaml:"defaultEmail"`
}

type RewardsConfig struct {
	AdReward      int64         `yaml:"adReward"`
	DailyAdCap    int           `yaml:"dailyAdCap"`
	DailyBonus    int64         `yaml:"dailyBonus"`
	ReferralBonus int64         `yaml:"referralBonus"`
	AdCooldown    time.Duration `yaml:"adCooldown"`
	Timezone      string        `yaml:"timezone"`
}

type SeedConfig struct {
	Enabled bool `yaml:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "rewards")
	v.SetDefault("database.migrate", true)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")

	v.SetDefault("telegramAuth.telegramBotToken", "")
	v.SetDefault("telegramAuth.debugMode", false)

	v.SetDefault("bot.enabled", false)
	v.SetDefault("bot.username", "")
	v.SetDefault("bot.webAppURL", "")
	v.SetDefault("bot.debug", false)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("admin.jwtSecret", "")
	v.SetDefault("admin.tokenTTL", 24*time.Hour)
	v.SetDefault("admin.defaultUsername", "admin")
	v.SetDefault("admin.defaultPassword", "admin123")
	v.SetDefault("admin.defaultEmail", "admin@example.com")

	v.SetDefault("rewards.adReward", 500)
	v.SetDefault("rewards.dailyAdCap", 30)
	v.SetDefault("rewards.dailyBonus", 1000)
	v.SetDefault("rewards.referralBonus", 1000)
	v.SetDefault("rewards.adCooldown", time.Duration(0))
	v.SetDefault("rewards.timezone", "UTC")

	v.SetDefault("seed.enabled", true)

	v.SetDefault("logLevel", "info")
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(configPath)
	v.SetConfigType(configFormat)

	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Admin.JWTSecret == "" {
		return errors.New("admin.jwtSecret is required")
	}
	if c.TelegramAuth.TelegramBotToken == "" && !c.TelegramAuth.DebugMode {
		return errors.New("telegramAuth.telegramBotToken is required unless debugMode is set")
	}
	if c.Bot.Enabled && c.TelegramAuth.TelegramBotToken == "" {
		return errors.New("bot.enabled requires telegramAuth.telegramBotToken")
	}
	if _, err := time.LoadLocation(c.Rewards.Timezone); err != nil {
		return fmt.Errorf("invalid rewards.timezone: %w", err)
	}
	return c.Rewards.validate()
}

func (r RewardsConfig) validate() error {
	switch {
	case r.AdReward <= 0:
		return errors.New("rewards.adReward must be positive")
	case r.DailyAdCap <= 0:
		return errors.New("rewards.dailyAdCap must be positive")
	case r.DailyBonus <= 0:
		return errors.New("rewards.dailyBonus must be positive")
	case r.ReferralBonus <= 0:
		return errors.New("rewards.referralBonus must be positive")
	case r.AdCooldown < 0:
		return errors.New("rewards.adCooldown must not be negative")
	}
	return nil
}
