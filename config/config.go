package config

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	// HTTP listen address, e.g. ":3000"
	Address string `env:"ADDRESS" envDefault:":3000"`
	// Port advertised in absolute image URLs.
	PublicPort string `env:"PUBLIC_PORT" envDefault:"3000"`
	// Directory that contains the uploads/ tree.
	UploadsRoot string `env:"UPLOADS_ROOT" envDefault:"."`
	MenuBaseURL string `env:"MENU_BASE_URL" envDefault:"http://localhost:3000"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"qrmenu"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`

	// Redis and Kafka are optional; an empty host disables them.
	RedisHost string        `env:"REDIS_HOST"`
	RedisPort string        `env:"REDIS_PORT" envDefault:"6379"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	KafkaBroker string `env:"KAFKA_BROKER"`
	KafkaTopic  string `env:"KAFKA_TOPIC" envDefault:"menu-events"`
	KafkaGroup  string `env:"KAFKA_GROUP_ID" envDefault:"menu-janitor"`

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

type GatewayConfig struct {
	Address     string `env:"GATEWAY_ADDRESS" envDefault:":8080"`
	MenuSvcURL  string `env:"MENU_SVC_URL" envDefault:"http://localhost:3000"`
	FrontendDir string `env:"FRONTEND_DIR" envDefault:"./frontend"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func LoadGateway() (GatewayConfig, error) {
	_ = godotenv.Load()

	var cfg GatewayConfig
	if err := env.Parse(&cfg); err != nil {
		return GatewayConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func (c Config) RedisEnabled() bool { return c.RedisHost != "" }

func (c Config) KafkaEnabled() bool { return c.KafkaBroker != "" }

func MustInitPostgres(cfg Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(cfg Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroup,
	})
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBroker),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
