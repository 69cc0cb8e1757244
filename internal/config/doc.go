// Package config loads chansynth settings and persists user preferences.
//
// Settings come from defaults, then an optional YAML file, then CHANSYNTH_*
// environment variables, and are validated before use. Preferences are a small
// key/value file written back on every change.
package config
