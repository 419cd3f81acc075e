package schema

import "github.com/invopop/jsonschema"

// GenerateFrom generates a JSON schema from an instance value. Parameter
// structs carry `json` and `jsonschema` tags; the reflected schema is what
// clients see when listing actions or MCP tools.
func GenerateFrom(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}
