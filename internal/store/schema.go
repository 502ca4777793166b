package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed document.schema.json
var documentSchemaSource string

var (
	schemaOnce     sync.Once
	documentSchema *jsonschema.Schema
)

func shapeSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("document.schema.json", bytes.NewReader([]byte(documentSchemaSource))); err != nil {
			panic(err)
		}
		documentSchema = compiler.MustCompile("document.schema.json")
	})
	return documentSchema
}

// validateShape checks a persisted blob against the expected top-level
// document layout before it is trusted. A hand-edited value that still
// parses as JSON but lost a collection fails here.
func validateShape(raw []byte) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}
	return shapeSchema().Validate(value)
}
