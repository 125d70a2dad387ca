package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

// CalendarCfg names the civil timezone used for day buckets.
type CalendarCfg struct {
	Timezone string
}

type LLMCfg struct {
	Provider    string
	APIBase     string
	Model       string
	APIKey      string
	TimeoutSec  int
	Temperature float64
	MockOnFail  bool
}

type CORSCfg struct {
	AllowOrigins []string
}

type RedisCfg struct {
	Addr           string
	Password       string
	DB             int
	PoolSize       int
	AnalysisTTLSec int
}

type S3Cfg struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UsePathStyle bool
	SSE          string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Database  DBCfg
	Calendar  CalendarCfg
	LLM       LLMCfg
	CORS      CORSCfg
	Redis     RedisCfg
	S3        S3Cfg
	Telemetry TelemetryCfg
}

// legacyEnv maps config keys to the bare variable names used by earlier
// deployments, so an existing .env keeps working.
var legacyEnv = map[string]string{
	"database.dsn":   "DATABASE_URL",
	"llm.provider":   "PROVIDER",
	"llm.apiBase":    "API_BASE",
	"llm.model":      "MODEL",
	"llm.apiKey":     "API_KEY",
	"llm.mockOnFail": "USE_MOCK_ON_FAIL",
}

func Load() (*Config, error) {
	base := newViper()

	// Read the file (if any)
	if err := base.ReadInConfig(); err == nil {
		// After finding the file, manually perform one expansion of ${ENV}, and then parse it.
		raw, err := os.ReadFile(base.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := newViper()
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		return unmarshal(v)
	}

	// No files are also allowed, using only env + default values
	return unmarshal(base)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP") // e.g. APP_LLM_PROVIDER -> llm.provider

	for key, legacy := range legacyEnv {
		_ = v.BindEnv(key, "APP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), legacy)
	}

	setDefaults(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if v.GetBool("debug") && cfg.Log.Level == "info" {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "prosolve")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8000)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.dsn", "sqlite://./data/prosolve.db")
	v.SetDefault("database.maxOpen", 10)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("calendar.timezone", "America/Chicago")
	v.SetDefault("llm.timeoutSec", 30)
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.mockOnFail", true)
	v.SetDefault("cors.allowOrigins", []string{"*"})
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.analysisTTLSec", 3600)
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("telemetry.sampleRatio", 1.0)
	v.SetDefault("debug", false)
	_ = v.BindEnv("debug", "APP_DEBUG", "DEBUG")
}
