// Package config reads process configuration from the environment, optionally
// seeded from a local .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load seeds the environment from .env files. A missing file is not an error;
// variables already set in the environment win.
func Load(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt is Get for integers. Unparseable values fall back with a log line.
func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: key=%s value=%q err=%v using=%d", key, v, err, fallback)
		return fallback
	}
	return n
}

// GetDuration accepts Go durations ("90s") or a bare number of seconds.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: key=%s value=%q err=%v using=%s", key, v, err, fallback)
		return fallback
	}
	return d
}

// Require returns the value of key or an error naming the missing variable.
func Require(key string) (string, error) {
	if v := Get(key, ""); v != "" {
		return v, nil
	}
	return "", &MissingError{Key: key}
}

type MissingError struct {
	Key string
}

func (e *MissingError) Error() string { return e.Key + " is required" }
