package envcfg

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

// ExitMissingVar is the process exit code for a missing required variable.
// Pipelines distinguish it from ordinary failures, so the value is part of
// the publish contract.
const ExitMissingVar = 6

// VarManifestPath names the variable holding the manifest location. It is
// also consulted by the maintenance commands as their default --manifest.
const VarManifestPath = "MANIFEST_PATH"

// Var describes one required publish variable.
type Var struct {
	Name string // exact environment variable name
	Hint string // what the value feeds
}

// required lists the publish variables in the order they are checked.
// The order matters: when several variables are missing, the first one
// in this list is the one reported.
var required = []Var{
	{Name: VarManifestPath, Hint: "path of the manifest file to update"},
	{Name: "NAME", Hint: "plugin display name"},
	{Name: "GUID", Hint: "stable plugin identifier"},
	{Name: "OVERVIEW", Hint: "one-line plugin summary"},
	{Name: "DESCRIPTION", Hint: "full plugin description"},
	{Name: "CATEGORY", Hint: "catalog category"},
	{Name: "OWNER", Hint: "maintainer or publishing organization"},
	{Name: "IMAGE_URL", Hint: "plugin artwork URL"},
	{Name: "VERSION", Hint: "version number being published"},
	{Name: "TARGET_ABI", Hint: "minimum server ABI the build targets"},
	{Name: "DOWNLOAD_URL", Hint: "package download URL"},
	{Name: "CHECKSUM", Hint: "package checksum"},
	{Name: "TIMESTAMP", Hint: "build timestamp"},
}

// Required returns the publish variables in contract order.
func Required() []Var {
	return append([]Var(nil), required...)
}

// MissingVarError reports a required publish variable that is absent from
// the environment. Its message is printed verbatim on stderr when a publish
// aborts, so the text is part of the publish contract.
type MissingVarError struct {
	Name string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("Environment variable %s is required", e.Name)
}

// Config is the publish request assembled from the environment.
type Config struct {
	ManifestPath string
	Plugin       feed.Plugin
	Version      feed.Version
}

// Collect reads every required variable and assembles the publish request.
// Variables are checked in contract order and the first absent one aborts
// collection with a MissingVarError. Set-but-empty values are accepted,
// matching plain environment lookup semantics.
func Collect() (*Config, error) {
	v := newViper()

	values := make(map[string]string, len(required))
	for _, rv := range required {
		if !v.IsSet(key(rv.Name)) {
			return nil, &MissingVarError{Name: rv.Name}
		}
		values[rv.Name] = v.GetString(key(rv.Name))
	}

	return &Config{
		ManifestPath: values[VarManifestPath],
		Plugin: feed.Plugin{
			Name:        values["NAME"],
			GUID:        values["GUID"],
			Overview:    values["OVERVIEW"],
			Description: values["DESCRIPTION"],
			Category:    values["CATEGORY"],
			Owner:       values["OWNER"],
			ImageURL:    values["IMAGE_URL"],
		},
		Version: feed.Version{
			Version:   values["VERSION"],
			TargetABI: values["TARGET_ABI"],
			SourceURL: values["DOWNLOAD_URL"],
			Checksum:  values["CHECKSUM"],
			Timestamp: values["TIMESTAMP"],
		},
	}, nil
}

// Status reports whether one contract variable is currently set.
type Status struct {
	Var
	Set   bool
	Value string
}

// Describe resolves every contract variable against the current
// environment, in contract order.
func Describe() []Status {
	v := newViper()

	out := make([]Status, 0, len(required))
	for _, rv := range required {
		s := Status{Var: rv}
		if v.IsSet(key(rv.Name)) {
			s.Set = true
			s.Value = v.GetString(key(rv.Name))
		}
		out = append(out, s)
	}
	return out
}

// ManifestPathFromEnv returns MANIFEST_PATH when set. Maintenance commands
// fall back to it so pipeline shells do not have to repeat --manifest.
func ManifestPathFromEnv() (string, bool) {
	v := newViper()
	if !v.IsSet(key(VarManifestPath)) {
		return "", false
	}
	return v.GetString(key(VarManifestPath)), true
}

// newViper binds every contract variable under its exact name. The
// variables are a published interface and take no prefix. AllowEmptyEnv
// keeps set-but-empty values visible to IsSet.
func newViper() *viper.Viper {
	v := viper.New()
	v.AllowEmptyEnv(true)
	for _, rv := range required {
		_ = v.BindEnv(key(rv.Name), rv.Name)
	}
	return v
}

// key maps a contract variable name to its viper key.
func key(name string) string {
	return strings.ToLower(name)
}
