package pubsub

import "github.com/nfrund/adhdhub/internal/config"

// TracingConfigFrom builds the tracing configuration from the application configuration.
func TracingConfigFrom(cfg config.Provider) TracingConfig {
	tc := DefaultTracingConfig()
	tc.Enabled = cfg.GetTracingEnabled()
	if name := cfg.GetTracingServiceName(); name != "" {
		tc.ServiceName = name
	}
	if url := cfg.GetTracingZipkinURL(); url != "" {
		tc.ZipkinURL = url
	}
	return tc
}
