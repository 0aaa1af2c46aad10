package utils

import "os"

// IsProduction reports the runtime environment without importing the config
// package, which itself depends on utils.
func IsProduction() bool {
	return os.Getenv("ENV") == "production"
}
