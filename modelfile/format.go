package modelfile

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

type Format int

const (
	YAML Format = iota
	JSON
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat gives the format of a file from its extension.
func ParseFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("%w: %q", ErrFormat, path)
}

// toJSON converts a document to JSON, the form patches are applied to.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return data, nil
	case YAML:
		return yaml.YAMLToJSON(data)
	case TOML:
		var v map[string]any
		if _, err := toml.Decode(string(data), &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %s", ErrFormat, format)
}
