package config

import "os"

func IsDebug() bool {
	return os.Getenv("FAKENEWS_DEBUG") == "1"
}
