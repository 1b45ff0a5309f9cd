package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds configurable MCP server defaults, loaded once at
// startup from OIFITS_MCP_* environment variables.
type serverConfig struct {
	MaxInputs int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInputs: envInt("OIFITS_MCP_MAX_INPUTS", 64),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
