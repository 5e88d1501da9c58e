package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Defaults for the monitoring and pairing tunables.
const (
	DefaultTickInterval          = 15 * time.Minute
	DefaultAlertThresholdHours   = 12
	DefaultMonitorConcurrency    = 8
	DefaultHandshakeTimeout      = 2 * time.Minute
	DefaultPollInterval          = 500 * time.Millisecond
	DefaultMaxCodeAttempts       = 50
	DefaultPerRecipientTimeout   = 10 * time.Second
	DefaultFanoutTimeout         = 30 * time.Second
	DefaultTimezone              = "UTC"
	defaultMQTTTopicPrefix       = "lifeline/families"
	defaultNotificationTitle     = "Lifeline"
	defaultQRCodeSize            = 256
	defaultQRCodeErrorCorrection = "medium"
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

	// Postgres backs the dispatch audit log. Leave unset to disable auditing.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for Firestore and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Monitor *MonitorConfig `json:"monitor" yaml:"monitor"`

	Pairing *PairingConfig `json:"pairing" yaml:"pairing"`

	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// MQTT configuration for device signal ingestion
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	// Scheduler configuration for the external tick trigger
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// QRCode configuration for connection code QR images
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Client configuration used by the pairing CLI
	Client *ClientConfig `json:"client" yaml:"client"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for Firestore and FCM
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines configuration for alert event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP settings (for rabbitmq provider)
	AMQPURL    string `json:"amqpUrl" yaml:"amqpUrl"`
	Exchange   string `json:"exchange" yaml:"exchange"`
	RoutingKey string `json:"routingKey" yaml:"routingKey"`
}

// MonitorConfig defines the survival-monitoring scheduler tunables
type MonitorConfig struct {
	// Run the in-process ticker. Disable when an external trigger calls /internal/tick.
	Enabled                    bool          `json:"enabled" yaml:"enabled"`
	TickInterval               time.Duration `json:"tickInterval" yaml:"tickInterval"`
	RunOnStart                 bool          `json:"runOnStart" yaml:"runOnStart"`
	DefaultAlertThresholdHours int           `json:"defaultAlertThresholdHours" yaml:"defaultAlertThresholdHours"`
	Concurrency                int           `json:"concurrency" yaml:"concurrency"`
	DefaultTimezone            string        `json:"defaultTimezone" yaml:"defaultTimezone"`
}

// PairingConfig defines code registry and handshake tunables
type PairingConfig struct {
	HandshakeTimeout time.Duration `json:"handshakeTimeout" yaml:"handshakeTimeout"`
	PollInterval     time.Duration `json:"pollInterval" yaml:"pollInterval"`
	MaxCodeAttempts  int           `json:"maxCodeAttempts" yaml:"maxCodeAttempts"`
}

// NotificationConfig defines fan-out tunables
type NotificationConfig struct {
	PerRecipientTimeout time.Duration `json:"perRecipientTimeout" yaml:"perRecipientTimeout"`
	FanoutTimeout       time.Duration `json:"fanoutTimeout" yaml:"fanoutTimeout"`
	Title               string        `json:"title" yaml:"title"`
}

// MQTTConfig defines the device signal subscriber
type MQTTConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Broker      string `json:"broker" yaml:"broker"`
	ClientID    string `json:"clientId" yaml:"clientId"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
	QoS         byte   `json:"qos" yaml:"qos"`
}

// SchedulerConfig defines authentication of the external tick trigger
type SchedulerConfig struct {
	// Verify the Google-signed OIDC token sent by Cloud Scheduler
	VerifyToken bool `json:"verifyToken" yaml:"verifyToken"`

	// Expected audience; defaults to the request URL
	Audience string `json:"audience" yaml:"audience"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// ClientConfig defines how the pairing CLI reaches the API
type ClientConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
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

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment overrides: FIREBASE_PROJECTID -> firebase.projectId
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// Default returns a config with every tunable at its default, for tools
// that run without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Monitor == nil {
		cfg.Monitor = &MonitorConfig{}
	}
	if cfg.Monitor.TickInterval <= 0 {
		cfg.Monitor.TickInterval = DefaultTickInterval
	}
	if cfg.Monitor.DefaultAlertThresholdHours <= 0 {
		cfg.Monitor.DefaultAlertThresholdHours = DefaultAlertThresholdHours
	}
	if cfg.Monitor.Concurrency <= 0 {
		cfg.Monitor.Concurrency = DefaultMonitorConcurrency
	}
	if cfg.Monitor.DefaultTimezone == "" {
		cfg.Monitor.DefaultTimezone = DefaultTimezone
	}

	if cfg.Pairing == nil {
		cfg.Pairing = &PairingConfig{}
	}
	if cfg.Pairing.HandshakeTimeout <= 0 {
		cfg.Pairing.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if cfg.Pairing.PollInterval <= 0 {
		cfg.Pairing.PollInterval = DefaultPollInterval
	}
	if cfg.Pairing.MaxCodeAttempts <= 0 {
		cfg.Pairing.MaxCodeAttempts = DefaultMaxCodeAttempts
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.PerRecipientTimeout <= 0 {
		cfg.Notification.PerRecipientTimeout = DefaultPerRecipientTimeout
	}
	if cfg.Notification.FanoutTimeout <= 0 {
		cfg.Notification.FanoutTimeout = DefaultFanoutTimeout
	}
	if cfg.Notification.Title == "" {
		cfg.Notification.Title = defaultNotificationTitle
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: "noop"}
	}

	if cfg.MQTT == nil {
		cfg.MQTT = &MQTTConfig{}
	}
	if cfg.MQTT.TopicPrefix == "" {
		cfg.MQTT.TopicPrefix = defaultMQTTTopicPrefix
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeErrorCorrection
	}

	if cfg.Client == nil {
		cfg.Client = &ClientConfig{}
	}
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = "http://localhost:" + strconv.Itoa(max(cfg.HTTP.Port, 8080))
	}
	if cfg.Client.Timeout <= 0 {
		cfg.Client.Timeout = DefaultPerRecipientTimeout
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
