package instance

import (
	"os"

	"github.com/angelmondragon/lojavirtual-backend/pkg/env"
)

// ID identifies the running process in logs. PaaS dynos report DYNO; other
// hosts fall back to the hostname, then "local".
func ID() string {
	if id := env.Get("DYNO", ""); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
