package document

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the text encoding of a document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks a format from a file name: .yaml and .yml are YAML,
// everything else is JSON.
func FormatFor(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// StripComments removes every line whose first non-blank characters are "//".
// Only JSON documents are stripped on import; in YAML such lines may belong to
// block scalars, and YAML has its own '#' comments.
func StripComments(data []byte) []byte {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		line := sc.Bytes()
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			continue
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// Decode parses data into a generic document. JSON numbers are kept as
// json.Number so integers are not widened to float64.
func Decode(f Format, data []byte) (map[string]any, error) {
	var doc map[string]any
	switch f {
	case YAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		norm, ok := normalize(raw).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("top-level value is %T, not a mapping", raw)
		}
		doc = norm
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, fmt.Errorf("unexpected data after top-level object")
		}
		if doc == nil {
			return nil, fmt.Errorf("top-level value is not an object")
		}
	}
	return doc, nil
}

// Encode renders a document with human-readable, sorted-key formatting.
func Encode(f Format, doc map[string]any) ([]byte, error) {
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// normalize converts yaml.v3 mappings with non-string keys to map[string]any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}
