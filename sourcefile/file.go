package sourcefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/livinginthepast/gestalt"
)

// Options configures file source behavior.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, missing files cause an error. Default: false
	// (a missing file contributes nothing and every lookup is absent).
	Required bool
}

type fileSource struct {
	data map[string]any
}

// New creates a config source backed by a single file. The file is parsed
// once, at construction.
func New(path string, opts Options) (gestalt.ConfigSource, error) {
	return Layered(opts, path)
}

// Layered creates a config source backed by several files merged in order:
// later files win key-by-key, and nested tables merge rather than replace.
func Layered(opts Options, paths ...string) (gestalt.ConfigSource, error) {
	merged := make(map[string]any)

	for _, path := range paths {
		parsed, err := parseFile(path, opts)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(&merged, parsed, mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
			return nil, fmt.Errorf("merge config file %s: %w", path, err)
		}
	}

	return &fileSource{data: merged}, nil
}

// Get walks the parsed data: the namespace selects the top-level table and
// the key descends from there. Both may be dot-separated paths.
func (f *fileSource) Get(namespace, key string) (any, bool) {
	node, ok := walk(f.data, namespace)
	if !ok {
		return nil, false
	}
	return walk(node, key)
}

func walk(node any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	for _, part := range strings.Split(path, ".") {
		table, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = table[part]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

func parseFile(path string, opts Options) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return nil, fmt.Errorf("required config file not found: %s: %w", path, err)
			}
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	var raw map[string]any
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML file %s: %w", path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON file %s: %w", path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse TOML file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: yaml, json, toml)", format)
	}

	return normalize(raw), nil
}

// normalize rewrites any map[any]any produced by the YAML parser into
// map[string]any so merging and lookups see one map shape. Non-string keys
// are dropped.
func normalize(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalize(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				continue
			}
			out[keyStr] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = normalizeValue(elem)
		}
		return out
	default:
		return value
	}
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
