package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the `env` and `envPrefix` tags of
// [StructuredConfig]. Variables set to an empty string count as unset, so
// `APP_LIST_LIMIT=` in a compose file does not fail the int conversion.
func parseEnv(cfg any) error {
	opts := env.Options{Environment: nonEmptyEnviron(os.Environ())}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

func nonEmptyEnviron(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		out[k] = v
	}
	return out
}
