package utils

import "os"

// IsDebug reports whether verbose logging was requested through DEBUG.
func IsDebug() bool {
	return os.Getenv("DEBUG") != ""
}
