package config

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
init : 讀檔 + 設置viper watch 與 onConfigChange
read : 一般讀取 需要使用讀寫鎖
設定檔不存在時只使用環境變數
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ModulerName string `mapstructure:"MODULER_NAME"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	PublicURL   string `mapstructure:"PUBLIC_URL"`
	UploadDir   string `mapstructure:"UPLOAD_DIR"`

	DbName      string `mapstructure:"POSTGRES_DB"`
	DbHost      string `mapstructure:"POSTGRES_HOST"`
	DbPort      string `mapstructure:"POSTGRES_PORT"`
	DbUser      string `mapstructure:"POSTGRES_USER"`
	DbPas       string `mapstructure:"POSTGRES_PASSWORD"`
	DbSslMode   string `mapstructure:"POSTGRES_SSLMODE"`
	DbMaxConns  int32  `mapstructure:"POSTGRES_MAX_CONNS"`
	AutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderTopic string `mapstructure:"KAFKA_ORDER_TOPIC"`
	// 空字串表示log不送kafka
	KafkaLogTopic string `mapstructure:"KAFKA_LOG_TOPIC"`

	AuthTokenKey      string `mapstructure:"AUTH_TOKEN_KEY"`
	AccessTokenHours  int    `mapstructure:"ACCESS_TOKEN_HOURS"`
	ResetTokenMinutes int    `mapstructure:"RESET_TOKEN_MINUTES"`

	SmtpHost     string `mapstructure:"SMTP_HOST"`
	SmtpPort     int    `mapstructure:"SMTP_PORT"`
	EmailAccount string `mapstructure:"EMAIL_ACCOUNT"`
	SmtpAuthKey  string `mapstructure:"SMTP_AUTH_KEY"`
	CompanyName  string `mapstructure:"COMPANY_NAME"`

	// 系統內沒有admin時啟動會建立, 密碼為空則略過
	AdminName     string `mapstructure:"ADMIN_NAME"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	TaxRate                float64 `mapstructure:"TAX_RATE"`
	FreeShippingThreshold  float64 `mapstructure:"FREE_SHIPPING_THRESHOLD"`
	FlatShippingFee        float64 `mapstructure:"FLAT_SHIPPING_FEE"`
	StrictOrderTransitions bool    `mapstructure:"ORDER_STRICT_TRANSITIONS"`

	RateLimitType    string        `mapstructure:"RATE_LIMIT_TYPE"`
	RateLimitWindow  time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	RateLimitGeneral int           `mapstructure:"RATE_LIMIT_GENERAL"`
	RateLimitAuth    int           `mapstructure:"RATE_LIMIT_AUTH"`
	RateLimitApi     int           `mapstructure:"RATE_LIMIT_API"`
}

// KafkaBrokerList 逗號分隔的broker字串轉成slice, 空字串回傳nil
func (c *Config) KafkaBrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c *Config) IsDebug() bool {
	return c.Env == "debug" || c.Env == "development"
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	muonce.Do(func() {
		config_singleton = &ConfigSingleTon{}
		cf, watch, err := loadConfig()
		if err != nil {
			log.Fatalf("error read config: %v", err)
		}
		config_singleton.Config = cf
		if !watch {
			return
		}
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			log.Printf("config file changed: %s", e.Name)
			if _, _, err := loadConfig(); err != nil {
				log.Printf("failed to reload config file: %v", err)
			}
		})
	})
}

/*
單純回傳錯誤  由外部決定要不要Fatal
watch 表示是否有實體設定檔可以監聽
*/
func loadConfig() (cf *Config, watch bool, err error) {
	config_singleton.mu.Lock()
	defer config_singleton.mu.Unlock()

	setDefaults(viper.GetViper())
	viper.AutomaticEnv()

	path := configFilePath()
	if _, statErr := os.Stat(path); statErr == nil {
		viper.SetConfigFile(path)
		viper.SetConfigType("env")
		if err = viper.ReadInConfig(); err != nil {
			return
		}
		watch = true
	}

	cf = &Config{}
	if err = viper.Unmarshal(cf); err != nil {
		return
	}
	config_singleton.Config = cf
	return
}

func configFilePath() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return ".env"
}

// 每個key都要有default, 否則AutomaticEnv + Unmarshal 讀不到環境變數
func setDefaults(v *viper.Viper) {
	v.SetDefault("MODULER_NAME", "storefront")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("PUBLIC_URL", "http://localhost:3000")
	v.SetDefault("UPLOAD_DIR", "uploads")

	v.SetDefault("POSTGRES_DB", "storefront")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_ORDER_TOPIC", "storefront.orders")
	v.SetDefault("KAFKA_LOG_TOPIC", "")

	v.SetDefault("AUTH_TOKEN_KEY", "")
	v.SetDefault("ACCESS_TOKEN_HOURS", 24)
	v.SetDefault("RESET_TOKEN_MINUTES", 10)

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("EMAIL_ACCOUNT", "")
	v.SetDefault("SMTP_AUTH_KEY", "")
	v.SetDefault("COMPANY_NAME", "Uzum Market")

	v.SetDefault("ADMIN_NAME", "Admin")
	v.SetDefault("ADMIN_EMAIL", "admin@uzummarket.com")
	v.SetDefault("ADMIN_PASSWORD", "")

	v.SetDefault("TAX_RATE", 0.12)
	v.SetDefault("FREE_SHIPPING_THRESHOLD", 100)
	v.SetDefault("FLAT_SHIPPING_FEE", 10)
	v.SetDefault("ORDER_STRICT_TRANSITIONS", false)

	v.SetDefault("RATE_LIMIT_TYPE", "slide_window")
	v.SetDefault("RATE_LIMIT_WINDOW", 15*time.Minute)
	v.SetDefault("RATE_LIMIT_GENERAL", 100)
	v.SetDefault("RATE_LIMIT_AUTH", 5)
	v.SetDefault("RATE_LIMIT_API", 200)
}
