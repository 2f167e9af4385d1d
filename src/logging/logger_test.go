package logging_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/logging"
)

func TestGetLoggerWithoutInit(t *testing.T) {
	require.NoError(t, logging.Close())
	assert.NotNil(t, logging.GetLogger())
	require.NoError(t, logging.Close())
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "demo.log")
	require.NoError(t, logging.Init(logging.Config{
		Level:      logging.LevelDebug,
		OutputPath: path,
		Format:     "json",
	}))
	t.Cleanup(func() { logging.Close() })

	logging.WithOp("search").Debug("probe", "index", 2)
	logging.WithError(errors.New("boom")).Warn("lookup failed")
	require.NoError(t, logging.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "probe", first["msg"])
	assert.Equal(t, "search", first["op"])
	assert.Equal(t, float64(2), first["index"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "boom", second["error"])
	assert.Equal(t, "WARN", second["level"])
}

func TestLevelFiltersOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	require.NoError(t, logging.Init(logging.Config{Level: "warn", OutputPath: path}))
	t.Cleanup(func() { logging.Close() })

	logging.GetLogger().Info("hidden")
	logging.GetLogger().Error("shown")
	require.NoError(t, logging.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hidden")
	assert.Contains(t, string(raw), "shown")
}

func TestDoubleInit(t *testing.T) {
	require.NoError(t, logging.Init(logging.Config{}))
	t.Cleanup(func() { logging.Close() })

	assert.ErrorIs(t, logging.Init(logging.Config{}), logging.ErrAlreadyInitialized)
	require.NoError(t, logging.Close())
	require.NoError(t, logging.Close())
	require.NoError(t, logging.Init(logging.Config{}))
}

func TestCloseWhileLogging(t *testing.T) {
	require.NoError(t, logging.Close())
	t.Cleanup(func() { logging.Close() })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NotNil(t, logging.GetLogger())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NoError(t, logging.Close())
			}
		}()
	}
	wg.Wait()
}
