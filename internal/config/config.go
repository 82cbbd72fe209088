package config

import (
	"os"
	"strconv"
)

// Defaults for the host, overridable from the environment and then from
// command line flags.
var (
	Host                = getEnvString("SSHNAKE_HOST", "0.0.0.0")
	Port                = getEnvInt("SSHNAKE_PORT", 6996)
	HostKeyPath         = getEnvString("SSHNAKE_PRIVATE_KEY_PATH", ".ssh/id_ed25519")
	MaxConnectionsPerIP = getEnvInt("SSHNAKE_MAX_CONNS_PER_IP", 2)
	BoardWidth          = getEnvInt("SSHNAKE_BOARD_WIDTH", 30)
	BoardHeight         = getEnvInt("SSHNAKE_BOARD_HEIGHT", 20)
	FrameRate           = getEnvInt("SSHNAKE_FPS", 30)
	LogLevel            = getEnvString("SSHNAKE_LOG_LEVEL", "info")
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}
