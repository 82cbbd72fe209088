package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SSHNAKE_TEST_INT", "")
	require.Equal(t, 7, getEnvInt("SSHNAKE_TEST_INT", 7))

	t.Setenv("SSHNAKE_TEST_INT", "42")
	require.Equal(t, 42, getEnvInt("SSHNAKE_TEST_INT", 7))

	t.Setenv("SSHNAKE_TEST_INT", "not a number")
	require.Equal(t, 7, getEnvInt("SSHNAKE_TEST_INT", 7))
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("SSHNAKE_TEST_STRING", "")
	require.Equal(t, "info", getEnvString("SSHNAKE_TEST_STRING", "info"))

	t.Setenv("SSHNAKE_TEST_STRING", "debug")
	require.Equal(t, "debug", getEnvString("SSHNAKE_TEST_STRING", "info"))
}
