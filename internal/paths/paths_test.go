package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ContainsAppName(t *testing.T) {
	t.Setenv(HomeEnv, "")

	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
	require.True(t, filepath.IsAbs(dir), "AppDataDir should be absolute: %s", dir)
	require.Equal(t, "clik", filepath.Base(dir))
}

func TestAppLocalDataDir_Platform(t *testing.T) {
	t.Setenv(HomeEnv, "")

	dir := AppLocalDataDir()
	require.True(t, strings.HasSuffix(dir, "clik"), "AppLocalDataDir should end with 'clik': %s", dir)

	switch runtime.GOOS {
	case "darwin":
		require.Contains(t, dir, "Application Support")
	case "linux":
		require.True(t, strings.Contains(dir, ".local/share") || os.Getenv("XDG_DATA_HOME") != "",
			"Linux path should use XDG_DATA_HOME or .local/share: %s", dir)
	}
}

func TestAppLocalDataDir_WithXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}
	t.Setenv(HomeEnv, "")
	t.Setenv("XDG_DATA_HOME", "/tmp/custom/data")

	require.Equal(t, "/tmp/custom/data/clik", AppLocalDataDir())
}

func TestHomeEnv_OverridesEverything(t *testing.T) {
	home := filepath.Join(t.TempDir(), "portable")
	t.Setenv(HomeEnv, home)

	require.Equal(t, home, AppDataDir())
	require.Equal(t, home, AppLocalDataDir())
	require.Equal(t, filepath.Join(home, "config.yaml"), ConfigFilePath())
	require.Equal(t, filepath.Join(home, "clik.db"), DBPath())
	require.Equal(t, filepath.Join(home, "clik.log"), LogFilePath())

	info, err := os.Stat(home)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestPaths_NoDotDotComponents(t *testing.T) {
	t.Setenv(HomeEnv, "")

	for _, p := range []string{AppDataDir(), AppLocalDataDir(), ConfigFilePath(), DBPath(), LogFilePath()} {
		require.False(t, strings.Contains(p, ".."), "Path should not contain '..': %s", p)
	}
}
