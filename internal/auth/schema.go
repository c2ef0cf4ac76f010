package auth

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema is the shape a stored session record must satisfy before it
// is trusted. Anything else is treated as no session.
const recordSchema = `{
	"type": "object",
	"required": ["user", "token", "refreshToken"],
	"properties": {
		"user": {
			"type": ["object", "null"],
			"required": ["id", "email", "full_name", "role"],
			"properties": {
				"id": {"type": "integer"},
				"email": {"type": "string"},
				"full_name": {"type": "string"},
				"role": {"enum": ["student", "teacher", "admin"]}
			}
		},
		"token": {"type": "string"},
		"refreshToken": {"type": "string"},
		"isAuthenticated": {"type": "boolean"},
		"isAdmin": {"type": "boolean"}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateRecord checks raw bytes against the record schema.
func validateRecord(raw []byte) error {
	schema, err := getSchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return schema.Validate(parsed)
}

// getSchema compiles the record schema once and caches it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(recordSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse record schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://" + RecordKey + ".json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
