package extractor

import (
	"fmt"

	"jobdesk/internal/config"
	"jobdesk/internal/port"
)

// ProviderFactory is a function that creates a ResumeExtractor from an
// extractor config.
type ProviderFactory func(cfg *config.ExtractorConfig) (port.ResumeExtractor, error)

// registry of extractor provider factories, populated explicitly via
// RegisterProvider at process startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extractor provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates a ResumeExtractor from the configured provider
// using the registered factory.
func NewExtractor(cfg *config.ExtractorConfig) (port.ResumeExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extractor provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
