package lexicon

import (
	"bytes"
	_ "embed" // For go:embed.
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v2"
)

//go:embed default.yaml
var defaultSource []byte

var defaultLexicon = Must(Parse(YAML, bytes.NewReader(defaultSource)))

// Default returns the built-in café vocabulary.
func Default() *Lexicon { return defaultLexicon }

// Format of a serialised Lexicon.
type Format int

const (
	YAML Format = iota
	TOML
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks a Format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%s: unsupported lexicon format %q", path, ext)
	}
}

// Parse a Lexicon in the given format from r.
func Parse(format Format, r io.Reader) (*Lexicon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	config := Config{}
	switch format {
	case YAML:
		err = yaml.UnmarshalStrict(data, &config)
	case TOML:
		err = toml.Unmarshal(data, &config)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&config)
	default:
		err = fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", format, err)
	}
	return New(config)
}

// Load a Lexicon from a file, using its extension to select the format.
func Load(path string) (*Lexicon, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	lex, err := Parse(format, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}
