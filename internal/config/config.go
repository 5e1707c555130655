package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	Analytics        Analytics        `mapstructure:",squash"`
	StoreHealthCheck StoreHealthCheck `mapstructure:",squash"`
}

type App struct {
	Name     string `mapstructure:"app_name"`
	Version  string `mapstructure:"app_version"`
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	QueryTimeout    time.Duration `mapstructure:"database_query_timeout"`
	AutoMigrate     bool          `mapstructure:"database_auto_migrate"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Analytics agrupa os parâmetros das consultas agregadas
type Analytics struct {
	CompletedStatus         string `mapstructure:"analytics_completed_status"`
	DefaultWindowDays       int    `mapstructure:"analytics_default_window_days"`
	DefaultTopProductsLimit int    `mapstructure:"analytics_default_top_products_limit"`
	MaxTopProductsLimit     int    `mapstructure:"analytics_max_top_products_limit"`
	ParallelQueries         bool   `mapstructure:"analytics_parallel_queries"`
}

type StoreHealthCheck struct {
	CronSchedule string `mapstructure:"store_health_check_cron"`
	Enabled      bool   `mapstructure:"store_health_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_NAME", "Restaurant Analytics API")
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("APP_TIMEZONE", "Local")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgresql")
	viper.SetDefault("DATABASE_URL", "localhost:5432/challenge_db?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "challenge")
	viper.SetDefault("DATABASE_PASSWORD", "challenge_2024")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", "30s")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false)

	// Desenvolvimento: todas as origens liberadas
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("ANALYTICS_COMPLETED_STATUS", "COMPLETED")
	viper.SetDefault("ANALYTICS_DEFAULT_WINDOW_DAYS", 30)
	viper.SetDefault("ANALYTICS_DEFAULT_TOP_PRODUCTS_LIMIT", 10)
	viper.SetDefault("ANALYTICS_MAX_TOP_PRODUCTS_LIMIT", 100)
	viper.SetDefault("ANALYTICS_PARALLEL_QUERIES", true)

	viper.SetDefault("STORE_HEALTH_CHECK_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("STORE_HEALTH_CHECK_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate rejeita combinações que deixariam as consultas sem sentido
func (c *Config) Validate() error {
	if c.Analytics.CompletedStatus == "" {
		return fmt.Errorf("config: ANALYTICS_COMPLETED_STATUS não pode ser vazio")
	}
	if c.Analytics.DefaultWindowDays <= 0 {
		return fmt.Errorf("config: ANALYTICS_DEFAULT_WINDOW_DAYS deve ser positivo, recebido %d", c.Analytics.DefaultWindowDays)
	}
	if c.Analytics.DefaultTopProductsLimit <= 0 || c.Analytics.DefaultTopProductsLimit > c.Analytics.MaxTopProductsLimit {
		return fmt.Errorf("config: ANALYTICS_DEFAULT_TOP_PRODUCTS_LIMIT deve estar entre 1 e %d", c.Analytics.MaxTopProductsLimit)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config: APP_TIMEZONE inválido: %w", err)
	}
	return nil
}

// Location resolve o fuso usado para calcular "hoje" nos filtros padrão
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.Timezone)
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
