package env

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads the given .env files into the process environment.
// Variables already present in the environment are never overridden, and a
// missing file is not fatal so containers can rely on real env vars only.
func LoadEnv(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil {
			log.Printf("env: skip %s: %v", f, err)
		}
	}
}

func GetString(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	return val
}

func GetInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	valAsInt, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fallback
	}

	return valAsInt
}

func GetBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	boolVal, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return fallback
	}

	return boolVal
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	d, err := time.ParseDuration(strings.TrimSpace(val))
	if err != nil {
		return fallback
	}

	return d
}
