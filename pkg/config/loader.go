package config

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/sortwheel/pkg/errors"
	"github.com/matzehuels/sortwheel/pkg/pipeline"
	"github.com/matzehuels/sortwheel/pkg/sorting"
)

// configName is the config file name without extension.
const configName = ".sortwheel"

// configType is the config file format.
const configType = "toml"

// envPrefix is the environment variable prefix for sortwheel settings.
const envPrefix = "SORTWHEEL"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load reads configuration from file, env vars and defaults.
// If configPath is non-empty it must exist. Otherwise .sortwheel.toml is
// searched in the working directory and $HOME, and a missing file is not
// an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in settings without consulting files or the
// environment.
func Default() *Config {
	v := viper.New()
	applyDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("length", pipeline.DefaultLength)
	v.SetDefault("fps", DefaultFPS)
	v.SetDefault("pause", pipeline.DefaultPause)
	v.SetDefault("seed", pipeline.DefaultSeed)
	v.SetDefault("reshuffle", true)
	v.SetDefault("algorithms", sortIDs())

	v.SetDefault("quantum.build", pipeline.DefaultBuildQuantum)
	v.SetDefault("quantum.shuffle", pipeline.DefaultShuffleQuantum)
	v.SetDefault("quantum.sort", pipeline.DefaultSortQuantum)

	v.SetDefault("bucket.size", 0)
	v.SetDefault("bucket.count", sorting.DefaultBucketCount)

	v.SetDefault("canvas.width", DefaultCanvasWidth)
	v.SetDefault("canvas.height", DefaultCanvasHeight)

	v.SetDefault("export.dir", DefaultExportDir)
	v.SetDefault("export.every", DefaultExportEvery)

	v.SetDefault("serve.addr", DefaultServeAddr)
}

func sortIDs() []string {
	ids := sorting.Sorts()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
