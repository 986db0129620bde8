package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/mdpipe/pkg/config"
)

// envVarPrefix is the prefix for all mdpipe environment variables.
const envVarPrefix = "MDPIPE_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDPIPE_ (e.g., MDPIPE_COLOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v, ok := env("COLOR"); ok {
		cfg.Color = config.ColorMode(v)
	}
	if v, ok := env("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := env("CACHE_STRATEGY"); ok {
		cfg.Cache.Strategy = v
	}
	if v, ok := env("CACHE_CAPACITY"); ok {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sCACHE_CAPACITY: %w", envVarPrefix, err)
		}
		cfg.Cache.Capacity = capacity
	}
	if v, ok := env("DETECT_LANGUAGE"); ok {
		detect, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDETECT_LANGUAGE: %w", envVarPrefix, err)
		}
		cfg.Render.DetectLanguage = detect
	}

	return nil
}

func env(name string) (string, bool) {
	return os.LookupEnv(envVarPrefix + name)
}
