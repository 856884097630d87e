package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/todomatic/internal/utils"
)

//go:embed seed.schema.json
var embeddedSchema []byte

const embeddedSchemaURL = "seed.schema.json"

// SchemaJSON returns the embedded seed file schema.
func SchemaJSON() []byte {
	out := make([]byte, len(embeddedSchema))
	copy(out, embeddedSchema)
	return out
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // dotted path to the offending value, e.g. tasks[2].name
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath overrides the embedded schema. A missing or broken schema
	// file degrades to the minimal checks with a warning.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool
}

func (r *ValidationResult) fail(err error) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// Validate checks the seed file against the schema and the minimal rules.
func (f *File) Validate(opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	schema, warning := compileSchema(opts.SchemaPath)
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}
	if schema != nil {
		result.UsedSchema = true
		f.validateWithSchema(schema, result)
		if !result.Valid {
			return result
		}
	}

	// Uniqueness cannot be expressed by the schema, so this always runs.
	f.validateMinimal(result)
	return result
}

func compileSchema(path string) (*jsonschema.Schema, string) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if path == "" {
		if err := compiler.AddResource(embeddedSchemaURL, bytes.NewReader(embeddedSchema)); err != nil {
			return nil, fmt.Sprintf("embedded schema unusable: %v", err)
		}
		schema, err := compiler.Compile(embeddedSchemaURL)
		if err != nil {
			return nil, fmt.Sprintf("embedded schema unusable: %v", err)
		}
		return schema, ""
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Sprintf("invalid schema path: %v", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Sprintf("schema file not found: %s, using minimal checks", absPath)
		}
		return nil, fmt.Sprintf("failed to read schema file: %v", err)
	}
	schema, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Sprintf("invalid schema file: %v", err)
	}
	return schema, ""
}

func (f *File) validateWithSchema(schema *jsonschema.Schema, result *ValidationResult) {
	data, err := json.Marshal(f)
	if err != nil {
		result.fail(&ValidationError{Err: fmt.Errorf("marshal seed for validation: %w", err)})
		return
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.fail(&ValidationError{Err: fmt.Errorf("unmarshal seed for validation: %w", err)})
		return
	}

	if err := schema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			result.fail(err)
			return
		}
		collectSchemaErrors(result, ve)
	}
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.fail(&ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func (f *File) validateMinimal(result *ValidationResult) {
	if f.SchemaVersion != SchemaVersion {
		result.fail(&ValidationError{
			Path: "schema_version",
			Err:  fmt.Errorf("expected %d, got %d", SchemaVersion, f.SchemaVersion),
		})
	}
	if f.Tasks == nil {
		result.fail(&ValidationError{Path: "tasks", Err: fmt.Errorf("missing required field")})
		return
	}

	seen := make(map[string]int, len(f.Tasks))
	for i, task := range f.Tasks {
		path := fmt.Sprintf("tasks[%d]", i)
		if task.ID == "" {
			result.fail(&ValidationError{Path: path + ".id", Err: fmt.Errorf("missing required field")})
			continue
		}
		if !validName(task.Name) {
			result.fail(&ValidationError{Path: path + ".name", Err: fmt.Errorf("must not be blank")})
		}
		if first, dup := seen[task.ID]; dup {
			result.fail(&ValidationError{
				Path: path + ".id",
				Err:  fmt.Errorf("duplicate id %q (first used by tasks[%d])", task.ID, first),
			})
			continue
		}
		seen[task.ID] = i
	}
}
