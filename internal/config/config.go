package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	APIToken   string

	RequestTimeout time.Duration

	// RedisURL enables cross-session state persistence when set.
	RedisURL string

	// SnapshotTTL bounds how long a persisted state snapshot stays loadable.
	SnapshotTTL time.Duration

	FeedPageSize     int
	DiscoverPageSize int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	baseURL := os.Getenv("ZOOMIES_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	timeoutSec, err := strconv.Atoi(os.Getenv("ZOOMIES_REQUEST_TIMEOUT"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 15
	}

	snapshotTTLSec, err := strconv.Atoi(os.Getenv("ZOOMIES_SNAPSHOT_TTL"))
	if err != nil || snapshotTTLSec <= 0 {
		snapshotTTLSec = 604800 // 7 days
	}

	feedPageSize, err := strconv.Atoi(os.Getenv("ZOOMIES_FEED_PAGE_SIZE"))
	if err != nil || feedPageSize <= 0 {
		feedPageSize = 10
	}

	discoverPageSize, err := strconv.Atoi(os.Getenv("ZOOMIES_DISCOVER_PAGE_SIZE"))
	if err != nil || discoverPageSize <= 0 {
		discoverPageSize = 20
	}

	return &Config{
		APIBaseURL: baseURL,
		APIToken:   os.Getenv("ZOOMIES_API_TOKEN"),

		RequestTimeout: time.Duration(timeoutSec) * time.Second,

		RedisURL:    os.Getenv("ZOOMIES_REDIS_URL"),
		SnapshotTTL: time.Duration(snapshotTTLSec) * time.Second,

		FeedPageSize:     feedPageSize,
		DiscoverPageSize: discoverPageSize,
	}, nil
}
