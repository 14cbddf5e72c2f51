package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/metaengine/metaconfig"
)

// testConfig writes a server config using file storage in a temp dir and
// returns its path.
func testConfig(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"METAENGINE_STORAGE", "METAENGINE_FILE_PATH", "METAENGINE_DATABASE_PATH"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "metaengine.yaml")
	yaml := "storage: file\nfile_path: " + filepath.Join(dir, "meta.json") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func show(t *testing.T, cfgPath string) metaconfig.Config {
	t.Helper()
	out, err := run(t, "--config", cfgPath, "config", "show")
	require.NoError(t, err)
	var c metaconfig.Config
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	return c
}

func TestConfigShowDefaults(t *testing.T) {
	assert.Equal(t, metaconfig.Defaults(), show(t, testConfig(t)))
}

func TestConfigSetAndReset(t *testing.T) {
	cfgPath := testConfig(t)

	out, err := run(t, "--config", cfgPath, "config", "set",
		"twitterHandle=@CBN", "siteName= <b>Battery Depot</b> ", "bingVerification=a=b")
	require.NoError(t, err)
	assert.Contains(t, out, `"twitterHandle": "@CBN"`)

	got := show(t, cfgPath)
	assert.Equal(t, "Battery Depot", got.SiteName)
	assert.Equal(t, "@CBN", got.TwitterHandle)
	assert.Equal(t, "a=b", got.BingVerification, "only the first = splits")
	assert.Equal(t, "/cbn-logo.png", got.DefaultImage, "unnamed fields are kept")

	_, err = run(t, "--config", cfgPath, "config", "reset")
	require.NoError(t, err)
	assert.Equal(t, metaconfig.Defaults(), show(t, cfgPath))
}

func TestConfigSetRejectsBadInput(t *testing.T) {
	cfgPath := testConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing equals", []string{"twitterHandle"}},
		{"unknown field", []string{"siteTitle=x"}},
		{"invalid url", []string{"facebookPageUrl=facebook.com/cbn"}},
		{"empty site name", []string{"siteName="}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", cfgPath, "config", "set"}, tt.args...)
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
	assert.Equal(t, metaconfig.Defaults(), show(t, cfgPath), "rejected input must not be saved")
}

func TestPreviewUsesStoredConfig(t *testing.T) {
	cfgPath := testConfig(t)
	_, err := run(t, "--config", cfgPath, "config", "set",
		"siteName=Battery Depot", "facebookPageUrl=https://facebook.com/cbn")
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "preview", "--type", "website")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Premium Golf Cart Batteries - Battery Depot</title>")
	assert.Contains(t, out, `<meta property="og:site_name" content="Battery Depot"/>`)
	assert.Contains(t, out, `<meta property="article:publisher" content="https://facebook.com/cbn"/>`)
	assert.Contains(t, out, `<link rel="canonical" href="https://cartbatterynation.com/products/golf-cart"/>`)

	_, err = run(t, "--config", cfgPath, "preview", "--type", "blog")
	assert.Error(t, err)
}
