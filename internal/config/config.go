package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// MaxDecimals is the largest token precision accepted; 10^77 is the largest
// power of ten below 2^256.
const MaxDecimals = 77

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Format    string
	LogLevel  string
	Decimals  int32
	Positions []PositionConfig
}

// PositionConfig is one position as written in the config file. Amounts are
// strings so that values above 2^64 survive decoding.
type PositionConfig struct {
	Name      string  `mapstructure:"name"`
	LowPrice  float64 `mapstructure:"low-price"`
	CurrPrice float64 `mapstructure:"curr-price"`
	UppPrice  float64 `mapstructure:"upp-price"`
	AmountY   string  `mapstructure:"amount-y"`
	AmountX   string  `mapstructure:"amount-x"`
	Unit      string  `mapstructure:"unit"`
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POSITIONS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", "text")
	v.SetDefault("log-level", "info")
	v.SetDefault("decimals", 18)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Format:   strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		LogLevel: v.GetString("log-level"),
		Decimals: v.GetInt32("decimals"),
	}
	if cfg.Decimals < 0 || cfg.Decimals > MaxDecimals {
		return Config{}, fmt.Errorf("decimals must be within [0, %d]: %d", MaxDecimals, cfg.Decimals)
	}

	if v.IsSet("positions") {
		hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			rejectInexactStrings,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		))
		if err := v.UnmarshalKey("positions", &cfg.Positions, hook); err != nil {
			return Config{}, fmt.Errorf("decode positions: %w", err)
		}
	}
	if len(cfg.Positions) == 0 {
		cfg.Positions = DefaultPositions()
	}

	return cfg, nil
}

// rejectInexactStrings stops a float from being weakly decoded into a string
// field. YAML and JSON decode large unquoted integers as float64, which
// silently drops digits of an amount.
func rejectInexactStrings(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		return nil, fmt.Errorf("numeric value %v cannot be decoded exactly, quote it as a string", data)
	}
	return data, nil
}

// DefaultPositions returns the two reference positions: ETH/BOLD around
// 2600 and DAI/BOLD around parity.
func DefaultPositions() []PositionConfig {
	return []PositionConfig{
		{
			Name:      "eth-bold",
			LowPrice:  2500,
			CurrPrice: 2600,
			UppPrice:  2700,
			AmountY:   "100000000",
			AmountX:   "260000000000",
			Unit:      UnitToken,
		},
		{
			Name:      "dai-bold",
			LowPrice:  0.99,
			CurrPrice: 1,
			UppPrice:  1.01,
			AmountY:   "100000000",
			AmountX:   "100000000",
			Unit:      UnitToken,
		},
	}
}
