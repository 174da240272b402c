package config

import "os"

func IsDebug() bool {
	return os.Getenv("BRANDGEN_DEBUG") == "1"
}
