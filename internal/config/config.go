package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env-default:"local"`
	HTTPServer  HTTPServer  `yaml:"http_server"`
	Postgres    Postgres    `yaml:"postgres"`
	Minio       Minio       `yaml:"minio"`
	ES          ES          `yaml:"elasticsearch"`
	Catalog     Catalog     `yaml:"catalog"`
	Progress    Progress    `yaml:"progress"`
	Entitlement Entitlement `yaml:"entitlement"`
	Checkout    Checkout    `yaml:"checkout"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8081"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowOrigin string        `yaml:"allow_origin" env-default:"http://localhost:3000"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type Minio struct {
	Endpoint  string                  `yaml:"endpoint" env-default:"minio:9000"`
	AccessKey string                  `yaml:"access_key"`
	SecretKey string                  `yaml:"secret_key"`
	UseSSL    bool                    `yaml:"use_ssl"`
	Buckets   map[string]BucketConfig `yaml:"buckets"`
}

type BucketConfig struct {
	Name       string        `yaml:"name"`
	PresignTTL time.Duration `yaml:"presign_ttl"`
}

type ES struct {
	Hosts    []string `yaml:"hosts"`
	Index    string   `yaml:"index"`
	Password string   `yaml:"password"`
}

type Catalog struct {
	Path string `yaml:"path" env:"CATALOG_PATH"`
}

type Progress struct {
	// Driver selects the record repository: "postgres" or "memory".
	Driver    string `yaml:"driver" env-default:"postgres"`
	RecordKey string `yaml:"record_key" env-default:"course_progress_v1"`
}

type Entitlement struct {
	Tier           string `yaml:"tier" env-default:"demo"`
	ChosenModule   int    `yaml:"chosen_module"`
	PreviewModules []int  `yaml:"preview_modules"`
}

type Checkout struct {
	// Links maps tier name to the externally configured payment-link base URL.
	Links      map[string]string `yaml:"links"`
	SuccessURL string            `yaml:"success_url"`
	CancelURL  string            `yaml:"cancel_url"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	return &cfg
}
