package module

import (
	"chalie/internal/platform/config"
)

// Options holds configuration settings for the focus API module
type Options struct {
	// APIToken is the static bearer token required on focus routes
	// an empty token rejects all requests
	APIToken string
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	ff := cfg.Prefix("CORE_FOCUS_")
	return Options{
		APIToken: ff.MayString("API_TOKEN", ""),
	}
}
