package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPointsPerDollar    = 10
	defaultPointValue         = 0.01
	defaultAccessTokenTTL     = 8 * time.Hour
	defaultExpiringSoonDays   = 7
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
	defaultPaymentGateway     = "approve"
	defaultSimulatedSuccess   = 0.95
	defaultDatabaseDriver     = "postgres"
	defaultAMQPExchange       = "orders_topic"
	defaultKitchenPort        = 8081
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Loyalty configures point accrual and redemption
	Loyalty *LoyaltyConfig `json:"loyalty" yaml:"loyalty"`

	// Payment selects the payment processor
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for table QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Inventory *InventoryConfig `json:"inventory" yaml:"inventory"`

	// Kitchen configures the worker that receives pushed order events
	Kitchen *KitchenConfig `json:"kitchen" yaml:"kitchen"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig selects the SQL dialect and the primary/replica endpoints
type DatabaseConfig struct {
	// Driver is "postgres" or "mysql"
	Driver          string             `json:"driver" yaml:"driver"`
	DBName          string             `json:"dbName" yaml:"dbName"`
	SSLMode         string             `json:"sslMode" yaml:"sslMode"`
	TimeZone        string             `json:"timeZone" yaml:"timeZone"`
	Master          ConnectionConfig   `json:"master" yaml:"master"`
	Replicas        []ConnectionConfig `json:"replicas" yaml:"replicas"`
	MaxIdleConns    int                `json:"maxIdleConns" yaml:"maxIdleConns"`
	MaxOpenConns    int                `json:"maxOpenConns" yaml:"maxOpenConns"`
	ConnMaxLifetime time.Duration      `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// ConnectionConfig is one database endpoint
type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
}

// AuthConfig defines the manager login and token signing
type AuthConfig struct {
	// ManagerSecretHash is a bcrypt hash of the shared manager secret. When empty,
	// ManagerSecret is hashed at startup.
	ManagerSecretHash string        `json:"managerSecretHash" yaml:"managerSecretHash"`
	ManagerSecret     string        `json:"managerSecret" yaml:"managerSecret"`
	AccessSecret      string        `json:"accessSecret" yaml:"accessSecret"`
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// LoyaltyConfig sets how points are earned and what they are worth
type LoyaltyConfig struct {
	PointsPerDollar float64 `json:"pointsPerDollar" yaml:"pointsPerDollar"`
	PointValue      float64 `json:"pointValue" yaml:"pointValue"`
}

// PaymentConfig selects the payment gateway
type PaymentConfig struct {
	// Gateway is "approve" (always approves) or "simulated" (random with SuccessRate)
	Gateway     string  `json:"gateway" yaml:"gateway"`
	SuccessRate float64 `json:"successRate" yaml:"successRate"`
	Seed        uint64  `json:"seed" yaml:"seed"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "none", "local", "google" or "amqp"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQPURL and Exchange for the amqp provider
	AMQPURL  string `json:"amqpUrl" yaml:"amqpUrl"`
	Exchange string `json:"exchange" yaml:"exchange"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// InventoryConfig tunes inventory reports
type InventoryConfig struct {
	ExpiringSoonDays int `json:"expiringSoonDays" yaml:"expiringSoonDays"`
}

// KitchenConfig defines the kitchen worker
type KitchenConfig struct {
	Port int `json:"port" yaml:"port"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// DATABASE_MASTER_USERNAME -> database.master.userName
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, currEnv string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// DATABASE_REPLICAS_0_HOST, DATABASE_REPLICAS_0_PORT, ...
	if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
		cfg.Database.Replicas = replicas
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never see a nil section.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = defaultDatabaseDriver
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Loyalty == nil {
		cfg.Loyalty = &LoyaltyConfig{}
	}
	if cfg.Loyalty.PointsPerDollar <= 0 {
		cfg.Loyalty.PointsPerDollar = defaultPointsPerDollar
	}
	if cfg.Loyalty.PointValue <= 0 {
		cfg.Loyalty.PointValue = defaultPointValue
	}

	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.Gateway == "" {
		cfg.Payment.Gateway = defaultPaymentGateway
	}
	if cfg.Payment.SuccessRate <= 0 || cfg.Payment.SuccessRate > 1 {
		cfg.Payment.SuccessRate = defaultSimulatedSuccess
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Exchange == "" {
		cfg.PubSub.Exchange = defaultAMQPExchange
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}

	if cfg.Inventory == nil {
		cfg.Inventory = &InventoryConfig{}
	}
	if cfg.Inventory.ExpiringSoonDays <= 0 {
		cfg.Inventory.ExpiringSoonDays = defaultExpiringSoonDays
	}

	if cfg.Kitchen == nil {
		cfg.Kitchen = &KitchenConfig{}
	}
	if cfg.Kitchen.Port <= 0 {
		cfg.Kitchen.Port = defaultKitchenPort
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads DATABASE_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host and port.
func buildReplicasFromEnv() []ConnectionConfig {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := "DATABASE_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
