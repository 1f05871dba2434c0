package main

import (
	"sync"

	"github.com/NethermindEth/pedersen/utils"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is decoded from flags and the optional YAML config file, flags taking
// precedence.
type Config struct {
	LogLevel      utils.LogLevel `mapstructure:"log-level" yaml:"log-level" validate:"gte=0,lte=4"`
	Colour        bool           `mapstructure:"colour" yaml:"colour"`
	MaxGoroutines int            `mapstructure:"max-goroutines" yaml:"max-goroutines" validate:"gte=0"`
	CacheSize     int            `mapstructure:"cache-size" yaml:"cache-size" validate:"gt=0"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns a singleton that can be used to validate Config
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := Validator().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
