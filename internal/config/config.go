package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings. The defaults match the values the game
// has always been served with: all interfaces, port 5000, assets from the
// directory the server is started in.
type Config struct {
	// Interface to bind, 0.0.0.0 so the Replit proxy can reach us
	Host string
	// HTTP port to listen on
	Port int
	// Directory holding the game's static files
	AssetRoot string
	// How long to wait for in-flight requests on shutdown
	ShutdownTimeout time.Duration
}

func Default() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            5000,
		AssetRoot:       ".",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load builds the configuration from defaults, an optional .env file,
// environment variables and command-line flags, in increasing priority.
func Load(args []string) (Config, error) {
	cfg := Default()

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("GAMESERVER_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("GAMESERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GAMESERVER_PORT %q: %v", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("GAMESERVER_ASSETS"); v != "" {
		cfg.AssetRoot = v
	}

	fs := flag.NewFlagSet("gameserver", flag.ContinueOnError)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Interface to listen on")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP port to listen on")
	fs.StringVar(&cfg.AssetRoot, "assets", cfg.AssetRoot, "Directory with the game's static files")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr returns the host:port string the server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
