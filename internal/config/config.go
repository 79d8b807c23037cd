package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultNetworksetupPath = "/usr/sbin/networksetup"

type Config struct {
	NetworksetupPath string
	IsDev            bool
	MockStatus       int // exit status MockWiFi reports in dev mode
}

// EnvFile is the only .env the tool reads: <UserConfigDir>/wifi-join/.env.
func EnvFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wifi-join", ".env"), nil
}

// Load parses flags out of args and returns the config together with the
// remaining positional arguments. Flags win over env vars. Mock mode is
// only reachable through -dev.
func Load(name string, args []string, logger *log.Logger) (*Config, []string, error) {
	if logger == nil {
		logger = log.Default()
	}
	loadEnvFile(logger)

	cfg := &Config{
		NetworksetupPath: getEnv("WIFI_JOIN_NETWORKSETUP", DefaultNetworksetupPath),
		MockStatus:       getEnvAsInt(logger, "WIFI_JOIN_MOCK_STATUS", 0),
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVar(&cfg.IsDev, "dev", false, "Run in development mode (Mock networksetup)")
	flags.StringVar(&cfg.NetworksetupPath, "networksetup", cfg.NetworksetupPath, "Absolute path to the networksetup binary")
	flags.IntVar(&cfg.MockStatus, "mock-status", cfg.MockStatus, "Exit status the dev mock reports")

	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	if !filepath.IsAbs(cfg.NetworksetupPath) {
		return nil, nil, fmt.Errorf("networksetup path must be absolute, got %q", cfg.NetworksetupPath)
	}

	return cfg, flags.Args(), nil
}

func loadEnvFile(logger *log.Logger) {
	path, err := EnvFile()
	if err != nil {
		return
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err := godotenv.Load(path); err != nil {
		logger.Printf("[CONFIG] Warning: could not read %s: %v", path, err)
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(logger *log.Logger, key string, fallback int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	val, err := strconv.Atoi(strValue)
	if err != nil {
		logger.Printf("[CONFIG] Warning: Invalid integer for %s, using default: %d", key, fallback)
		return fallback
	}
	return val
}
