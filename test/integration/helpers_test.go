//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/feedsmith-labs/feedsmith/internal/envcfg"
	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

// Fixture guids are RFC 4122 UUIDs; Lint flags anything else.
const (
	guidTrakt  = "c83d86bb-a1e0-4c35-a113-e2d1b8f04f45"
	guidFanart = "9f27c2e4-51a8-4d9f-b431-6c70de08a1b5"
)

// feedEnv holds the isolated manifest location for one test.
type feedEnv struct {
	Dir          string
	ManifestPath string
}

// setupFeedEnv creates an isolated feed directory and points MANIFEST_PATH
// at it. The env var is restored after the test.
func setupFeedEnv(t *testing.T) *feedEnv {
	t.Helper()

	env := &feedEnv{Dir: t.TempDir()}
	env.ManifestPath = filepath.Join(env.Dir, "manifest.json")
	t.Setenv("MANIFEST_PATH", env.ManifestPath)
	return env
}

// setPluginEnv exports the publish variables for one plugin version, the way
// a release pipeline would before invoking the tool.
func setPluginEnv(t *testing.T, name, guid, version string) {
	t.Helper()

	t.Setenv("NAME", name)
	t.Setenv("GUID", guid)
	t.Setenv("OVERVIEW", name+" overview")
	t.Setenv("DESCRIPTION", name+" description")
	t.Setenv("CATEGORY", "General")
	t.Setenv("OWNER", "feedsmith")
	t.Setenv("IMAGE_URL", "https://example.com/"+guid+".png")
	t.Setenv("VERSION", version)
	t.Setenv("TARGET_ABI", "10.8.0.0")
	t.Setenv("DOWNLOAD_URL", "https://example.com/dl/"+guid+"_"+version+".zip?sig=abc&exp=9")
	t.Setenv("CHECKSUM", "sum-"+version)
	t.Setenv("TIMESTAMP", "2025-06-01T12:00:00Z")
}

// clearEnv removes a variable for the duration of the test.
func clearEnv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	os.Unsetenv(name)
}

// publish runs the full publish pipeline the way main wires it: collect the
// environment, load the manifest, merge, write.
func publish(t *testing.T) error {
	t.Helper()

	cfg, err := envcfg.Collect()
	if err != nil {
		return err
	}
	m, err := feed.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}
	return feed.Write(cfg.ManifestPath, feed.Merge(m, cfg.Plugin, cfg.Version))
}

// mustPublish fails the test on any publish error.
func mustPublish(t *testing.T) {
	t.Helper()
	if err := publish(t); err != nil {
		t.Fatalf("publish: %v", err)
	}
}

// loadFeed reads the manifest back, failing the test on error.
func loadFeed(t *testing.T, env *feedEnv) feed.Manifest {
	t.Helper()
	m, err := feed.Load(env.ManifestPath)
	if err != nil {
		t.Fatalf("loading %s: %v", env.ManifestPath, err)
	}
	return m
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
