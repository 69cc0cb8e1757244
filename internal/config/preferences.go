package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v2"
)

// Preference keys used by the CLI.
const (
	PrefAudienceSource = "audience_src"
	PrefLastDirectory  = "last_directory"
)

// ErrEmptyPreferences is reported when the preferences file exists but holds nothing.
var ErrEmptyPreferences = errors.New("empty preferences file")

// DefaultPreferences returns the values written when no usable file exists.
func DefaultPreferences() map[string]string {
	return map[string]string{
		PrefAudienceSource: "",
	}
}

// Preferences is a persisted key/value store. Every mutation is written to disk
// immediately under an advisory file lock.
type Preferences struct {
	path   string
	lock   *flock.Flock
	values map[string]string
	issue  error
}

// OpenPreferences loads the preferences at path. A missing, empty or unreadable file
// is replaced by DefaultPreferences; the reason is kept in LoadIssue.
func OpenPreferences(path string) (*Preferences, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create preferences directory: %w", err)
	}

	p := &Preferences{
		path: path,
		lock: flock.New(path + ".lock"),
	}

	values, err := p.read()
	if err != nil {
		p.issue = err
		p.values = DefaultPreferences()
		if err := p.save(); err != nil {
			return nil, err
		}
		return p, nil
	}
	p.values = values
	return p, nil
}

// Path returns the preferences file location.
func (p *Preferences) Path() string {
	return p.path
}

// LoadIssue returns why defaults were loaded instead of the file, or nil.
func (p *Preferences) LoadIssue() error {
	return p.issue
}

// Get returns the value stored for key.
func (p *Preferences) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set stores value under key and saves.
func (p *Preferences) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("preference key is empty")
	}
	p.values[key] = value
	return p.save()
}

// Delete removes key and saves.
func (p *Preferences) Delete(key string) error {
	if _, ok := p.values[key]; !ok {
		return nil
	}
	delete(p.values, key)
	return p.save()
}

// Keys returns the stored keys in sorted order.
func (p *Preferences) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a copy of every stored value.
func (p *Preferences) All() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

func (p *Preferences) read() (map[string]string, error) {
	if err := p.lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock preferences: %w", err)
	}
	defer p.lock.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmptyPreferences
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	// A bare "~" or "null" document decodes to a nil map.
	if values == nil {
		return nil, ErrEmptyPreferences
	}
	return values, nil
}

func (p *Preferences) save() error {
	data, err := yaml.Marshal(p.values)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := p.lock.Lock(); err != nil {
		return fmt.Errorf("lock preferences: %w", err)
	}
	defer p.lock.Unlock()

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}
