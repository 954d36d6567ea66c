package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Embedded schema names
const (
	SchemaItemTemplates = "item_templates.schema.json"
	SchemaEnchantments  = "enchantments.schema.json"
)

// SchemaValidator validates JSON data against the embedded JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
}

type schemaValidator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a named schema
func (v *schemaValidator) ValidateFile(dataPath, schemaName string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaName)
}

// ValidateBytes validates JSON data bytes against a named schema
func (v *schemaValidator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema compiles an embedded schema once and caches it
func (v *schemaValidator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// formatValidationError flattens the error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywords, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
