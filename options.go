package metriki

import (
	"io"
	"log/slog"
)

type registryConfig struct {
	logger *slog.Logger
}

// RegistryOption configures a Registry constructed by NewRegistry.
type RegistryOption func(*registryConfig)

// WithLogger sets the logger used for structural events (first-time metric
// creation, metrics-set registration). The registry logs at debug level only
// and never on the instrument hot path. By default logs are discarded.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(cfg *registryConfig) { cfg.logger = l }
}

func applyRegistryOptions(opts []RegistryOption) registryConfig {
	cfg := registryConfig{}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}
