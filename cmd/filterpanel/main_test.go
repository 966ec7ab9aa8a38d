package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/filterpanel/internal/cli"
	"github.com/rshade/filterpanel/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "filterpanel", root.Use)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(dir, "absent.env")))
	})

	t.Run("sets unset variables only", func(t *testing.T) {
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte(
			"FILTERPANEL_TEST_NEW=from-file\nFILTERPANEL_TEST_SET=from-file\n"), 0o600))

		t.Setenv("FILTERPANEL_TEST_SET", "from-env")
		t.Setenv("FILTERPANEL_TEST_NEW", "")
		require.NoError(t, os.Unsetenv("FILTERPANEL_TEST_NEW"))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "from-file", os.Getenv("FILTERPANEL_TEST_NEW"))
		assert.Equal(t, "from-env", os.Getenv("FILTERPANEL_TEST_SET"))
	})
}
