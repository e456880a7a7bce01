package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Seed    uint64
	Output  string
	NoColor bool
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Seed:    parseUintEnv("BATTLESHIP_SEED", 0),
		Output:  getEnvOrDefault("BATTLESHIP_OUTPUT", OutputText),
		NoColor: parseBoolEnv("BATTLESHIP_NO_COLOR", false),
		Verbose: parseBoolEnv("BATTLESHIP_VERBOSE", false),
	}
}

// Validate checks the flag values
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, OutputText, OutputJSON)
	}
}

// Logger builds the CLI logger: warnings only, everything with --verbose
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadDotEnv reads .env from the working directory if there is one
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseUintEnv(key string, defaultVal uint64) uint64 {
	val, err := strconv.ParseUint(getEnvOrDefault(key, ""), 10, 64)
	if err != nil {
		return defaultVal
	}
	return val
}

func parseBoolEnv(key string, defaultVal bool) bool {
	val, err := strconv.ParseBool(getEnvOrDefault(key, ""))
	if err != nil {
		return defaultVal
	}
	return val
}
