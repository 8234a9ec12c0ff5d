// Serves JSON Schemas describing the request bodies.

package handlers

import (
	"context"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/maruel/showcase/internal/server/dto"
)

// schemaTypes maps a schema name to its request type.
var schemaTypes = map[string]reflect.Type{
	"filter":    reflect.TypeFor[dto.FilterCaseStudiesRequest](),
	"analyze":   reflect.TypeFor[dto.AnalyzeRequest](),
	"related":   reflect.TypeFor[dto.RelatedEntitiesRequest](),
	"recommend": reflect.TypeFor[dto.RecommendRequest](),
}

// SchemaHandler serves request JSON Schemas.
type SchemaHandler struct{}

// Schema returns the JSON Schema of the named request body.
func (h *SchemaHandler) Schema(ctx context.Context, req *dto.SchemaRequest) (*jsonschema.Schema, error) {
	t, ok := schemaTypes[req.Name]
	if !ok {
		return nil, dto.NotFound("schema " + req.Name)
	}
	r := jsonschema.Reflector{Anonymous: true, DoNotReference: true}
	return r.ReflectFromType(t), nil
}
