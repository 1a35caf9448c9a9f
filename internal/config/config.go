package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Render         Render         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Audit          Audit          `mapstructure:",squash"`
	Scoring        Scoring        `mapstructure:",squash"`
	ScheduledAudit ScheduledAudit `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL                string  `mapstructure:"meta_base_url"`
	URL                    string  `mapstructure:"meta_url"`
	Version                string  `mapstructure:"meta_version"`
	AppID                  string  `mapstructure:"meta_app_id"`
	AppSecret              string  `mapstructure:"meta_app_secret"`
	RequestTimeoutSeconds  int     `mapstructure:"meta_request_timeout_seconds"`
	RateLimitRPS           float64 `mapstructure:"meta_rate_limit_rps"`
	RateLimitBurst         int     `mapstructure:"meta_rate_limit_burst"`
	PostsLimit             int     `mapstructure:"meta_posts_limit"`
	PostInsightsLimit      int     `mapstructure:"meta_post_insights_limit"`
	PostInsightsConcurrent int     `mapstructure:"meta_post_insights_concurrency"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Audit struct {
	FreeMonthlyLimit        int    `mapstructure:"audit_free_monthly_limit"`
	ProMonthlyLimit         int    `mapstructure:"audit_pro_monthly_limit"`
	FreeRecommendationLimit int    `mapstructure:"audit_free_recommendation_limit"`
	DefaultPreset           string `mapstructure:"audit_default_preset"`
}

// Scoring concentra as constantes de negócio da política de pontuação
type Scoring struct {
	EngagementWeight        float64 `mapstructure:"scoring_engagement_weight"`
	ConsistencyWeight       float64 `mapstructure:"scoring_consistency_weight"`
	ReadinessWeight         float64 `mapstructure:"scoring_readiness_weight"`
	EngagementTopRate       float64 `mapstructure:"scoring_engagement_top_rate"`
	EngagementHighRate      float64 `mapstructure:"scoring_engagement_high_rate"`
	EngagementHighFloor     int     `mapstructure:"scoring_engagement_high_floor"`
	EngagementMediumRate    float64 `mapstructure:"scoring_engagement_medium_rate"`
	EngagementMediumFloor   int     `mapstructure:"scoring_engagement_medium_floor"`
	EngagementFloor         int     `mapstructure:"scoring_engagement_floor"`
	EngagementMultiplier    float64 `mapstructure:"scoring_engagement_multiplier"`
	DefaultFollowers        int     `mapstructure:"scoring_default_followers"`
	FallbackPostsPerWeek    float64 `mapstructure:"scoring_fallback_posts_per_week"`
	EngagementRecThreshold  int     `mapstructure:"scoring_engagement_rec_threshold"`
	ConsistencyRecThreshold int     `mapstructure:"scoring_consistency_rec_threshold"`
	ReadinessRecThreshold   int     `mapstructure:"scoring_readiness_rec_threshold"`
}

type ScheduledAudit struct {
	CronSchedule      string `mapstructure:"scheduled_audit_cron"`
	Enabled           bool   `mapstructure:"scheduled_audit_enabled"`
	MaxConcurrentJobs int    `mapstructure:"scheduled_audit_max_concurrent_jobs"`
	Preset            string `mapstructure:"scheduled_audit_preset"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/page_audit?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 15)
	viper.SetDefault("META_RATE_LIMIT_RPS", 10)
	viper.SetDefault("META_RATE_LIMIT_BURST", 5)
	viper.SetDefault("META_POSTS_LIMIT", 100)
	viper.SetDefault("META_POST_INSIGHTS_LIMIT", 25)
	viper.SetDefault("META_POST_INSIGHTS_CONCURRENCY", 5)

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("AUDIT_FREE_MONTHLY_LIMIT", 3)
	viper.SetDefault("AUDIT_PRO_MONTHLY_LIMIT", 50)
	viper.SetDefault("AUDIT_FREE_RECOMMENDATION_LIMIT", 3)
	viper.SetDefault("AUDIT_DEFAULT_PRESET", "30d")

	// Política de pontuação
	viper.SetDefault("SCORING_ENGAGEMENT_WEIGHT", 0.4)
	viper.SetDefault("SCORING_CONSISTENCY_WEIGHT", 0.35)
	viper.SetDefault("SCORING_READINESS_WEIGHT", 0.25)
	viper.SetDefault("SCORING_ENGAGEMENT_TOP_RATE", 5.0)
	viper.SetDefault("SCORING_ENGAGEMENT_HIGH_RATE", 3.0)
	viper.SetDefault("SCORING_ENGAGEMENT_HIGH_FLOOR", 85)
	viper.SetDefault("SCORING_ENGAGEMENT_MEDIUM_RATE", 1.0)
	viper.SetDefault("SCORING_ENGAGEMENT_MEDIUM_FLOOR", 65)
	viper.SetDefault("SCORING_ENGAGEMENT_FLOOR", 20)
	viper.SetDefault("SCORING_ENGAGEMENT_MULTIPLIER", 20.0)
	viper.SetDefault("SCORING_DEFAULT_FOLLOWERS", 1000)
	viper.SetDefault("SCORING_FALLBACK_POSTS_PER_WEEK", 3.0)
	viper.SetDefault("SCORING_ENGAGEMENT_REC_THRESHOLD", 50)
	viper.SetDefault("SCORING_CONSISTENCY_REC_THRESHOLD", 60)
	viper.SetDefault("SCORING_READINESS_REC_THRESHOLD", 75)

	viper.SetDefault("SCHEDULED_AUDIT_CRON", "0 6 * * 1") // Toda segunda-feira às 6h
	viper.SetDefault("SCHEDULED_AUDIT_ENABLED", false)
	viper.SetDefault("SCHEDULED_AUDIT_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("SCHEDULED_AUDIT_PRESET", "30d")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
