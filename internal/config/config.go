// Package config reads server settings from flags, falling back to
// environment variables and then to development defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

const (
	DefaultAddr    = ":3000"
	DefaultOrigins = "http://localhost:5173"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr         string
	AllowOrigins []string
	Debug        bool
}

// Load parses args (without the program name) into a Config.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	addr := fs.String("addr", getenv("MOVEGEN_ADDR", DefaultAddr), "listen address")
	origins := fs.String("origins", getenv("MOVEGEN_ORIGINS", DefaultOrigins), "comma-separated allowed CORS origins")
	debug := fs.Bool("debug", getenb("MOVEGEN_DEBUG", false), "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:         strings.TrimSpace(*addr),
		AllowOrigins: splitCSV(*origins),
		Debug:        *debug,
	}
	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if len(cfg.AllowOrigins) == 0 {
		return Config{}, fmt.Errorf("%w: no allowed origins", ErrInvalidConfig)
	}
	return cfg, nil
}

// OriginList joins the allowed origins the way fiber's cors middleware expects.
func (c Config) OriginList() string {
	return strings.Join(c.AllowOrigins, ", ")
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
