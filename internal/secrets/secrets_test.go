// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "github-token", "  ghp_abc123  \n")
				writeFile(t, dir, "hal-contact", "user@example.com\n")
				return dir
			},
			want: map[string]string{
				"github-token": "ghp_abc123",
				"hal-contact":  "user@example.com",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "github-token", "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{
				"github-token": "valid-key",
			},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, "github-token", "ghp_real")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"github-token": "ghp_real",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HARVEST_TEST_FROM_ENV=dotenv\nHARVEST_TEST_PRESET=dotenv\n"), 0o644))

	t.Setenv("HARVEST_TEST_PRESET", "shell")
	t.Setenv("HARVEST_TEST_FROM_ENV", "")
	require.NoError(t, os.Unsetenv("HARVEST_TEST_FROM_ENV"))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "dotenv", os.Getenv("HARVEST_TEST_FROM_ENV"))
	assert.Equal(t, "shell", os.Getenv("HARVEST_TEST_PRESET"))

	assert.NoError(t, LoadEnv(filepath.Join(dir, "missing.env")))
}

func TestToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	assert.Equal(t, "from-file", Token(map[string]string{GitHubToken: "from-file"}))
	assert.Empty(t, Token(map[string]string{}))

	t.Setenv("GITHUB_TOKEN", "from-env")
	assert.Equal(t, "from-env", Token(map[string]string{GitHubToken: "from-file"}))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
