// Package config provides the TOML-backed configuration store for
// weatherfetch and resolves the per-user directories the tool uses.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
)

const appName = "weatherfetch"

// ValidUnits are the unit systems accepted by the weather API.
var ValidUnits = []string{"standard", "metric", "imperial"}

var validate = validator.New()

var (
	// ErrNoLocation is returned when a named location does not exist.
	ErrNoLocation = errors.New("named location not found")
	// ErrNoTemplate is returned when a named template does not exist.
	ErrNoTemplate = errors.New("named template not found")
)

// document mirrors the on-disk layout of config.toml.
type document struct {
	General   generalSection           `toml:"general"`
	Locations map[string]locationEntry `toml:"locations,omitempty"`
	Templates map[string]string        `toml:"templates,omitempty"`
}

type generalSection struct {
	APIKey          string `toml:"api_key,omitempty"`
	GeocodingAPIKey string `toml:"geocoding_api_key,omitempty"`
	CacheDuration   int    `toml:"cache_duration,omitempty"` // minutes
	Units           string `toml:"units,omitempty" validate:"omitempty,oneof=standard metric imperial"`
	DefaultLocation string `toml:"default_location,omitempty"`
	DefaultTemplate string `toml:"default_template,omitempty"`
}

// Coordinates are kept as strings to preserve the precision the user
// supplied; they are passed through to the API verbatim.
type locationEntry struct {
	Latitude  string `toml:"latitude"`
	Longitude string `toml:"longitude"`
}

// Store is an explicit configuration object, constructed once per
// invocation and passed to whatever needs it. There is no hidden
// process-wide document.
type Store struct {
	path string
	doc  document
}

// Load reads the configuration file at path. An empty path resolves to
// the default location under the user's config directory. A missing
// file yields an empty store, matching first-run behaviour.
func Load(path string) (*Store, error) {
	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate.Struct(&s.doc.General); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return s, nil
}

// Save writes the store back to its file, overwriting any previous
// contents.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s.doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// CacheDuration returns how long cached API responses stay fresh.
// Stored in minutes, defaulting to 30.
func (s *Store) CacheDuration() time.Duration {
	minutes := s.doc.General.CacheDuration
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// SetCacheDuration sets the cache duration in minutes.
func (s *Store) SetCacheDuration(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("cache duration must be a positive number of minutes")
	}
	s.doc.General.CacheDuration = minutes
	return nil
}

// Units returns the configured default unit system, "metric" if unset.
func (s *Store) Units() string {
	if s.doc.General.Units == "" {
		return "metric"
	}
	return s.doc.General.Units
}

// SetUnits sets the default unit system after validating it.
func (s *Store) SetUnits(units string) error {
	if err := validate.Var(units, "oneof=standard metric imperial"); err != nil {
		return fmt.Errorf("invalid units %q: specify one of %s", units, strings.Join(ValidUnits, ", "))
	}
	s.doc.General.Units = units
	return nil
}

// APIKey returns the OpenWeatherMap API key, empty if unset.
func (s *Store) APIKey() string {
	return s.doc.General.APIKey
}

func (s *Store) SetAPIKey(key string) {
	s.doc.General.APIKey = key
}

// GeocodingAPIKey returns the Google geocoding API key, empty if unset.
func (s *Store) GeocodingAPIKey() string {
	return s.doc.General.GeocodingAPIKey
}

func (s *Store) SetGeocodingAPIKey(key string) {
	s.doc.General.GeocodingAPIKey = key
}

// NamedLocation looks up a saved location by name.
func (s *Store) NamedLocation(name string) (lat, lon string, err error) {
	entry, ok := s.doc.Locations[name]
	if !ok {
		return "", "", ErrNoLocation
	}
	return entry.Latitude, entry.Longitude, nil
}

// SaveNamedLocation stores coordinates under a name, overwriting any
// existing entry.
func (s *Store) SaveNamedLocation(name, lat, lon string) {
	if s.doc.Locations == nil {
		s.doc.Locations = make(map[string]locationEntry)
	}
	s.doc.Locations[name] = locationEntry{Latitude: lat, Longitude: lon}
}

// DeleteLocation removes a saved location. If it is the current default
// location, the default is cleared as well.
func (s *Store) DeleteLocation(name string) error {
	if _, ok := s.doc.Locations[name]; !ok {
		return ErrNoLocation
	}
	if s.doc.General.DefaultLocation == name {
		s.doc.General.DefaultLocation = ""
	}
	delete(s.doc.Locations, name)
	return nil
}

// DefaultLocation returns the name of the default location, empty if
// none is set.
func (s *Store) DefaultLocation() string {
	return s.doc.General.DefaultLocation
}

func (s *Store) SetDefaultLocation(name string) {
	s.doc.General.DefaultLocation = name
}

// Template looks up a saved output template by name.
func (s *Store) Template(name string) (string, error) {
	t, ok := s.doc.Templates[name]
	if !ok {
		return "", ErrNoTemplate
	}
	return t, nil
}

// SaveTemplate stores an output template under a name.
func (s *Store) SaveTemplate(name, template string) {
	if s.doc.Templates == nil {
		s.doc.Templates = make(map[string]string)
	}
	s.doc.Templates[name] = template
}

// DeleteTemplate removes a saved template, clearing the default
// template if it referred to it.
func (s *Store) DeleteTemplate(name string) error {
	if _, ok := s.doc.Templates[name]; !ok {
		return ErrNoTemplate
	}
	if s.doc.General.DefaultTemplate == name {
		s.doc.General.DefaultTemplate = ""
	}
	delete(s.doc.Templates, name)
	return nil
}

// DefaultTemplate returns the name of the default template, empty if
// none is set.
func (s *Store) DefaultTemplate() string {
	return s.doc.General.DefaultTemplate
}

func (s *Store) SetDefaultTemplate(name string) {
	s.doc.General.DefaultTemplate = name
}

// ConfigDir returns the per-user configuration directory, creating it
// if necessary.
func ConfigDir() (string, error) {
	return appDir(xdg.ConfigHome)
}

// CacheDir returns the per-user cache directory, creating it if
// necessary. Cached API responses live here, one file per cache key.
func CacheDir() (string, error) {
	return appDir(xdg.CacheHome)
}

func appDir(base string) (string, error) {
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return dir, nil
}
