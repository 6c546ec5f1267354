package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type RedisConnect struct {
	Addr     string `yaml:"REDIS_ADDR" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// CartStore selects where serialized carts live. "redis" keeps them in the
// shared redis instance, "file" keeps one JSON file per cart under Dir.
type CartStore struct {
	Backend string        `yaml:"backend" env:"CART_STORE_BACKEND" env-default:"redis"`
	Dir     string        `yaml:"dir" env:"CART_STORE_DIR" env-default:"./data/carts"`
	TTL     time.Duration `yaml:"ttl" env:"CART_STORE_TTL" env-default:"720h"`
}

type Catalog struct {
	// SeedPath overrides the embedded product list when set.
	SeedPath string `yaml:"seed_path" env:"CATALOG_SEED_PATH" env-default:""`
}

type SendGrid struct {
	APIKey     string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail  string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"shop@maryana.farm"`
	FromName   string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Maryana Farm"`
	OrderEmail string `yaml:"ORDER_EMAIL" env:"SENDGRID_ORDER_EMAIL" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	RedisConnect RedisConnect `yaml:"redis"`
	CartStore    CartStore    `yaml:"cart_store"`
	Catalog      Catalog      `yaml:"catalog"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Addr, r.DB)
}
