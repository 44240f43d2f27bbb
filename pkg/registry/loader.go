package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mcpconf/mcpconf/pkg/schema"
)

// Loader reads and writes a registry document at a fixed path. The
// encoding is chosen by file extension: .yaml/.yml is YAML, anything
// else is JSON.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given registry file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the registry file path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads, decodes, and parses the registry file. Every entry is
// validated during parsing; the load is all-or-nothing.
func (l *Loader) Load(opts ...Option) (*Registry, error) {
	raw, err := l.LoadRaw()
	if err != nil {
		return nil, err
	}

	doc, err := schema.ParseRegistry(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	return FromDocument(doc, opts...), nil
}

// LoadOrInit loads the registry file, or returns an empty registry if
// the file does not exist yet.
func (l *Loader) LoadOrInit(opts ...Option) (*Registry, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return New(opts...), nil
	}
	return l.Load(opts...)
}

// LoadRaw reads and decodes the registry file without parsing it into
// the canonical model. An empty file decodes to an empty registry
// document.
func (l *Loader) LoadRaw() (map[string]any, error) {
	data, err := os.ReadFile(l.path) // #nosec G304 - path is caller-supplied configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var raw map[string]any
	if l.isYAML() {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	} else if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if raw == nil {
		raw = map[string]any{"version": "1.0", "servers": map[string]any{}}
	}

	return raw, nil
}

// Save serializes the registry to the loader's path. The document is
// written to a uniquely named temp file in the target directory and
// renamed into place so a failed write never truncates the registry.
func (l *Loader) Save(reg *Registry) error {
	raw := schema.RegistryToRaw(reg.Document())

	var data []byte
	var err error
	if l.isYAML() {
		data, err = yaml.Marshal(raw)
	} else {
		data, err = json.MarshalIndent(raw, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(l.path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace registry file: %w", err)
	}

	return nil
}

func (l *Loader) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(l.path))
	return ext == ".yaml" || ext == ".yml"
}
