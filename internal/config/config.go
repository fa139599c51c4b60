package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sngm3741/job-application/web/internal/domain"
)

// Preset は表示形式ごとの既定ポートと debug 設定。旧 2 バリアントの起動設定をそのまま引き継ぐ。
type Preset struct {
	Port  int
	Debug bool
}

// Presets maps each display format to its default listener settings.
var Presets = map[domain.DisplayFormat]Preset{
	domain.DisplayStructured: {Port: 5000, Debug: true},
	domain.DisplayText:       {Port: 8000, Debug: false},
}

// Config holds runtime configuration shared across the application.
type Config struct {
	DisplayFormat     domain.DisplayFormat
	Host              string
	Port              int
	Debug             bool
	TemplateDir       string
	MetricsAddr       string
	LogLevel          string
	LogFormat         string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Addr returns the host:port the HTTP server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads .env, an optional config.yaml and APP_* environment variables, in
// increasing order of precedence, and returns a validated Config.
func Load() (Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display_format", string(domain.DisplayStructured))
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("template_dir", "")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("log_format", "console")
	v.SetDefault("read_header_timeout", 5*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}

// fromViper は viper の値から Config を組み立てる。port と debug は明示されていなければ
// 表示形式のプリセットに従う。
func fromViper(v *viper.Viper) (Config, error) {
	setDefaults(v)

	format, err := domain.ParseDisplayFormat(v.GetString("display_format"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	preset := Presets[format]

	port := preset.Port
	if v.IsSet("port") {
		port = v.GetInt("port")
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid configuration: port %d out of range", port)
	}

	debug := preset.Debug
	if v.IsSet("debug") {
		debug = v.GetBool("debug")
	}

	logLevel := strings.TrimSpace(v.GetString("log_level"))
	if logLevel == "" {
		logLevel = "info"
		if debug {
			logLevel = "debug"
		}
	}
	switch strings.ToLower(logLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("invalid configuration: unknown log level %q", logLevel)
	}

	cfg := Config{
		DisplayFormat:     format,
		Host:              strings.TrimSpace(v.GetString("host")),
		Port:              port,
		Debug:             debug,
		TemplateDir:       strings.TrimSpace(v.GetString("template_dir")),
		MetricsAddr:       strings.TrimSpace(v.GetString("metrics_addr")),
		LogLevel:          logLevel,
		LogFormat:         strings.TrimSpace(v.GetString("log_format")),
		ReadHeaderTimeout: v.GetDuration("read_header_timeout"),
		ShutdownTimeout:   v.GetDuration("shutdown_timeout"),
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg, nil
}

// loadEnvFile は .env があれば読み込む。既に設定済みの環境変数は上書きしない。
func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}
