package mockbackend

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/property_create.json
var propertyCreateSchema string

var compiledPropertySchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource("property_create.json", strings.NewReader(propertyCreateSchema)); err != nil {
		panic(fmt.Sprintf("failed to add property schema resource: %v", err))
	}

	schema, err := compiler.Compile("property_create.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile property schema: %v", err))
	}
	compiledPropertySchema = schema
}

// ValidatePropertyDraft проверяет payload нового объявления по контракту.
// Сообщение ошибки содержит путь до первого нарушенного поля.
func ValidatePropertyDraft(payload map[string]any) error {
	if err := compiledPropertySchema.Validate(payload); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			cause := ve
			for len(cause.Causes) > 0 {
				cause = cause.Causes[0]
			}
			location := strings.TrimPrefix(cause.InstanceLocation, "/")
			if location == "" {
				location = "proprietate"
			}
			return fmt.Errorf("%s: %s", location, cause.Message)
		}
		return err
	}
	return nil
}
