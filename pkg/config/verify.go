package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It checks enum and minimum constraints of every property and required fields.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	if err := checkNode(defs, schema, configMap, ""); err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// checkNode checks value against enum and minimum constraints of the schema node and its properties
func checkNode(defs, node map[string]any, val any, path string) error {
	if ref, ok := node["$ref"].(string); ok {
		def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any)
		if !ok {
			return fmt.Errorf("%s: unknown schema ref %s", path, ref)
		}
		node = def
	}

	if enum, ok := node["enum"].([]any); ok && val != nil && !slices.Contains(enum, val) {
		return fmt.Errorf("%s: value %v is not one of %v", path, val, enum)
	}
	if minimum, ok := node["minimum"].(float64); ok {
		if v, ok := val.(float64); ok && v < minimum {
			return fmt.Errorf("%s: value %v is less than %v", path, v, minimum)
		}
	}

	props, ok := node["properties"].(map[string]any)
	if !ok {
		return nil
	}
	obj, ok := val.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p, ok := props[k].(map[string]any)
		if !ok {
			continue
		}
		if err := checkNode(defs, p, obj[k], strings.TrimPrefix(path+"."+k, ".")); err != nil {
			return err
		}
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return errors.New("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return errors.New("server.timeout is required")
	}

	// check layout config
	if cfg.Layout.Viewport <= 0 {
		return errors.New("layout.viewport is required")
	}

	// check llm config if enabled
	if cfg.LLM.Enabled && (cfg.LLM.Endpoint == "" || cfg.LLM.Model == "") {
		return errors.New("llm.endpoint and llm.model are required when llm is enabled")
	}

	// check enrichment config if enabled
	if cfg.Enrich.Enabled && cfg.Enrich.Timeout == 0 {
		return errors.New("enrich.timeout is required when enrichment is enabled")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
