package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	HttpPort   int           `yaml:"http_port"`
	LogLevel   string        `yaml:"log_level"`
	LogJSON    bool          `yaml:"log_json"`
	JwtTTL     time.Duration `yaml:"jwt_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"` // 0 means bcrypt.DefaultCost
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func (s *Config) PgConn() Pg {
	return s.private.Pg
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	mustValidate(cfg)
	return cfg
}

func mustValidate(cfg *Config) {
	if cfg.private.JwtKey == "" {
		panic("jwt_key is required")
	}
	if cfg.Public.JwtTTL <= 0 {
		panic("jwt_ttl is required")
	}
	pg := cfg.private.Pg
	if pg.Host == "" || pg.Port == 0 || pg.User == "" || pg.Dbname == "" {
		panic(fmt.Sprintf("incomplete pg config: %+v", Pg{Host: pg.Host, Port: pg.Port, User: pg.User, Dbname: pg.Dbname}))
	}
}

// NewForTesting builds a config without reading files. Used by tests
// that need to inject connection parameters directly.
func NewForTesting(public Public, private Private) *Config {
	return &Config{public, private}
}
