package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/filterpanel/internal/cli"
	"github.com/rshade/filterpanel/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLI(t)
	path := filepath.Join(home, "config.yaml")

	out, err := runCLI(t, "", "", "config", "init", "--server", "https://dns.lan")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://dns.lan", cfg.Server.URL)
	assert.Equal(t, config.DefaultPageSize, cfg.UI.PageSize)

	_, err = runCLI(t, "", "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCLI(t, "", "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_CustomPath(t *testing.T) {
	setupCLI(t)
	path := filepath.Join(t.TempDir(), "nested", "panel.yaml")

	_, err := runCLI(t, "", "", "--config", path, "config", "init")
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestConfigValidate(t *testing.T) {
	home := setupCLI(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"server:",
		"  url: https://dns.lan:8443",
		"ui:",
		"  page_size: 25",
		"  locale: de",
	}, "\n")), 0o600))

	out, err := runCLI(t, "", "", "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Server: https://dns.lan:8443")
	assert.Contains(t, out, "Page size: 25")
	assert.Contains(t, out, "Locale: de")
}

func TestConfigValidate_Invalid(t *testing.T) {
	home := setupCLI(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  page_size: -1\n"), 0o600))

	_, err := runCLI(t, "", "", "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_ServerFlagIsValidated(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "ftp://dns.lan", "", "filters", "list")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_LocaleFlag(t *testing.T) {
	setupCLI(t)
	_, url := newControlServer(t)

	out, err := runCLI(t, url, "", "--locale", "de", "filters", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DNS-Sperrlisten")
}

func TestRoot_Version(t *testing.T) {
	setupCLI(t)
	cmd := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "1.2.3", cmd.Version)

	var groups []string
	for _, c := range cmd.Commands() {
		groups = append(groups, c.Name())
	}
	assert.Contains(t, groups, "filters")
	assert.Contains(t, groups, "config")
}
