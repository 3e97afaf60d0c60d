package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Slack    SlackConfig    `mapstructure:"slack"`
	Channels ChannelsConfig `mapstructure:"channels"`
	Data     DataConfig     `mapstructure:"data"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type SlackConfig struct {
	BotToken      string `mapstructure:"bot_token"`
	SigningSecret string `mapstructure:"signing_secret"`
}

// ChannelsConfig holds the destination channel ids for the notification
// streams.
type ChannelsConfig struct {
	Approvals     string `mapstructure:"approvals"`
	Announcements string `mapstructure:"announcements"`
	Submissions   string `mapstructure:"submissions"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Secrets stay out of the config file; env wins when present.
	if v := os.Getenv("SLACK_BOT_TOKEN"); v != "" {
		cfg.Slack.BotToken = v
	}
	if v := os.Getenv("SLACK_SIGNING_SECRET"); v != "" {
		cfg.Slack.SigningSecret = v
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	return &cfg, nil
}
