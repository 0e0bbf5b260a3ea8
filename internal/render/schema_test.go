package render

import (
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

func validateJSON(t *testing.T, schemaPath, doc string) {
	t.Helper()
	sch, err := jsonschema.NewCompiler().Compile(schemaPath)
	if err != nil {
		t.Fatalf("compile schema %s: %v", schemaPath, err)
	}
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if err := sch.Validate(inst); err != nil {
		t.Fatalf("output does not match %s: %v", schemaPath, err)
	}
}
