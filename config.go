package marketcache

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the freshness policies of every store and the settings of the
// composition root. Durations are written as Go duration strings ("90s").
type Config struct {
	Snapshot   FreshnessPolicy `yaml:"snapshot"`
	History    FreshnessPolicy `yaml:"history"`
	AIResponse FreshnessPolicy `yaml:"ai_response"`
	Outlook    FreshnessPolicy `yaml:"outlook"`
	News       FreshnessPolicy `yaml:"news"`

	// HistoryRange is the range the coordinator consults. Empty means 1M.
	HistoryRange string `yaml:"history_range"`

	// FetchTimeout bounds every remote fetch. Zero means unbounded.
	FetchTimeout time.Duration `yaml:"fetch_timeout" validate:"gte=0s"`

	// EventBuffer is the default buffer depth for Subscribe.
	EventBuffer int `yaml:"event_buffer" validate:"gte=0"`

	// BannerLocation is an IANA zone name for sync banner times. Empty means
	// local time.
	BannerLocation string `yaml:"banner_location"`
}

const defaultEventBuffer = 64

// DefaultConfig returns the product defaults.
func DefaultConfig() *Config {
	return &Config{
		Snapshot:     SnapshotPolicy,
		History:      HistoryPolicy,
		AIResponse:   AIResponsePolicy,
		Outlook:      OutlookPolicy,
		News:         NewsPolicy,
		HistoryRange: string(DefaultHistoryRange),
		EventBuffer:  defaultEventBuffer,
	}
}

var validate = validator.New()

// Validate checks every policy and setting.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			v := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (%s)", v.Namespace(), v.Tag(), v.Param())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.location(); err != nil {
		return fmt.Errorf("invalid config: banner_location: %w", err)
	}
	return nil
}

func (c *Config) location() (*time.Location, error) {
	if c.BannerLocation == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.BannerLocation)
}

// ParseConfig decodes YAML from r over DefaultConfig, so omitted fields keep
// their defaults, and validates the result.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads and validates the configuration at path.
func LoadConfig(path string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Loading configuration", zap.String("path", path))

	var cfg *Config
	err := withConfigFile(path, func(r io.Reader) error {
		var err error
		cfg, err = ParseConfig(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
