package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	CDNBase   string `yaml:"cdn_base"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type SiteConfig struct {
	Domain     string `yaml:"domain"`
	SitemapURL string `yaml:"sitemap_url"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	Storage  StorageConfig  `yaml:"storage"`
	Site     SiteConfig     `yaml:"site"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	// секреты из окружения имеют приоритет над yaml
	overrideString(&cfg.Database.DSN, "DATABASE_URL")
	overrideString(&cfg.Email.SMTPHost, "SMTP_HOST")
	overrideInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	overrideString(&cfg.Email.SMTPUser, "SMTP_USER")
	overrideString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	overrideString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	overrideInt64(&cfg.Telegram.ChatID, "TELEGRAM_CHAT_ID")
	overrideString(&cfg.Storage.AccessKey, "AWS_ACCESS_KEY_ID")
	overrideString(&cfg.Storage.SecretKey, "AWS_SECRET_ACCESS_KEY")

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Site.Domain == "" {
		cfg.Site.Domain = "sentag.ru"
	}
	if cfg.Site.SitemapURL == "" {
		cfg.Site.SitemapURL = "https://" + cfg.Site.Domain + "/sitemap.xml"
	}
	return &cfg
}

func overrideString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, env string) {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideInt64(dst *int64, env string) {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}
