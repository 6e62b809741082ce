package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesJSONFile(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, err := InitLogger("unit", false)
	require.NoError(t, err)

	logger.Debug("debug goes to file only")
	_ = logger.Sync()

	files, err := filepath.Glob(filepath.Join(LogsDir, "unit_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug goes to file only")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "{"))
}

func TestInitLogger_DefaultEnvPrefix(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := InitLogger("", true)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(LogsDir, "default_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
