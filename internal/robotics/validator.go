package robotics

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed sscs-robotics-schema.json
var payloadSchema string

const schemaName = "sscs-robotics-schema.json"

// Validator checks a payload against the robotics business rules.
type Validator interface {
	Validate(p Payload) error
}

type schemaValidator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded payload schema.
func NewValidator() (Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, strings.NewReader(payloadSchema)); err != nil {
		return nil, fmt.Errorf("register payload schema: %w", err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compile payload schema: %w", err)
	}
	return &schemaValidator{schema: schema}, nil
}

func (v *schemaValidator) Validate(p Payload) error {
	data, err := p.JSON()
	if err != nil {
		return Wrap(ErrValidation, "validate", "serialize payload", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Wrap(ErrValidation, "validate", "reparse payload", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return Wrap(ErrValidation, "validate", "payload failed robotics schema", err)
	}
	return nil
}
