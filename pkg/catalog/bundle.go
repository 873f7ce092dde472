package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// bundleSchema validates externally authored catalog bundles before they are
// trusted. Built-in catalogs are Go data and skip this path.
const bundleSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["framework", "version", "requirements"],
  "properties": {
    "framework": {"type": "string", "minLength": 1},
    "version": {"type": "string", "minLength": 1},
    "requirements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "category", "binding", "severity"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "article": {"type": "integer", "minimum": 0},
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "category": {"type": "string", "minLength": 1},
          "binding": {"enum": ["MANDATORY", "RECOMMENDED", "BEST_PRACTICE", "GUIDANCE"]},
          "severity": {"enum": ["CRITICAL", "MAJOR", "MINOR"]},
          "compliance_type": {"type": "string"},
          "applicability": {"type": "object"},
          "evidence_required": {"type": "array", "items": {"type": "string"}},
          "guidance": {"type": "array", "items": {"type": "string"}},
          "cross_references": {"type": "array", "items": {"type": "string"}},
          "penalty": {"type": "string"}
        }
      }
    }
  }
}`

var compiledBundleSchema = jsonschema.MustCompileString("catalog-bundle.json", bundleSchema)

// ParseBundle validates and decodes a JSON catalog bundle. Schema violations
// are authoring errors and fail the load; they never reach runtime callers
// because bundles are ingested at startup or in catalog CI.
func ParseBundle(data []byte) (*Catalog, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	if err := compiledBundleSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("bundle schema: %w", err)
	}

	var c Catalog
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}

	for i := range c.Requirements {
		if c.Requirements[i].Framework == "" {
			c.Requirements[i].Framework = c.Framework
		}
	}
	return &c, nil
}

// LoadBundle reads and parses a catalog bundle file.
func LoadBundle(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle %s: %w", path, err)
	}
	return ParseBundle(data)
}
