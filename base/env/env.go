package env

import (
	"os"
)

// PodName falls back to the hostname outside k8s
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	host, _ := os.Hostname()
	return host
}

func EnvName() string {
	return os.Getenv("ENV_NAME")
}

func AppName() string {
	return os.Getenv("APP_NAME")
}
