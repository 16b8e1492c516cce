package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is internally
// consistent and that every setting the selected corpus backend needs is
// present.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "server port is required"}.Error())
	}
	if cfg.EncoderURL == "" {
		errs = append(errs, ValidationError{"ENCODER_URL", "encoder endpoint is required"}.Error())
	}

	switch cfg.CorpusBackend {
	case CorpusBackendBundle:
		if cfg.CorpusBundlePath == "" && cfg.CorpusS3Bucket == "" {
			errs = append(errs, ValidationError{"CORPUS_BUNDLE_PATH", "a bundle path or an S3 bucket is required for the bundle backend"}.Error())
		}
		if cfg.CorpusS3Bucket != "" && cfg.CorpusS3Key == "" {
			errs = append(errs, ValidationError{"CORPUS_S3_KEY", "an S3 key is required when an S3 bucket is set"}.Error())
		}
	case CorpusBackendPostgres:
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				errs = append(errs, ValidationError{field, "required for the postgres corpus backend"}.Error())
			}
		}
	default:
		errs = append(errs, ValidationError{"CORPUS_BACKEND", fmt.Sprintf("unknown backend %q", cfg.CorpusBackend)}.Error())
	}

	// The generator is optional: without it, retrieval misses surface a
	// generation-unavailable error instead of a generated recipe.

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
