package env

import "os"

// Get returns the value of the environment variable or a fallback. Used for
// the few knobs read before config parsing runs, such as LOG_FORMAT.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
