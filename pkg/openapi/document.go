package openapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	DefaultTitle       = "Generated Form"
	DefaultVersion     = "1.0.0"
	DefaultPath        = "/submit"
	DefaultOperationID = "submitForm"
	schemaName         = "Submission"
	openAPIVersion     = "3.0.3"
)

// DocumentOptions configures the generated description. Zero values fall back
// to the package defaults.
type DocumentOptions struct {
	Title       string
	Version     string
	Path        string
	OperationID string
}

func (o DocumentOptions) withDefaults() DocumentOptions {
	if strings.TrimSpace(o.Title) == "" {
		o.Title = DefaultTitle
	}
	if strings.TrimSpace(o.Version) == "" {
		o.Version = DefaultVersion
	}
	if strings.TrimSpace(o.Path) == "" {
		o.Path = DefaultPath
	}
	if !strings.HasPrefix(o.Path, "/") {
		o.Path = "/" + o.Path
	}
	if strings.TrimSpace(o.OperationID) == "" {
		o.OperationID = DefaultOperationID
	}
	return o
}

// Document builds and validates an OpenAPI description whose single POST
// operation accepts the submission schema of fields. The schema is published
// under components/schemas/Submission and referenced from the request body.
func Document(ctx context.Context, fields []model.Field, options DocumentOptions) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options = options.withDefaults()

	schema, err := SubmissionSchema(fields)
	if err != nil {
		return nil, err
	}
	schema.Title = options.Title

	ref := "#/components/schemas/" + schemaName
	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithContent(openapi3.NewContentWithSchemaRef(openapi3.NewSchemaRef(ref, schema), []string{ContentType(fields)}))

	operation := openapi3.NewOperation()
	operation.OperationID = options.OperationID
	operation.Summary = "Submit " + options.Title
	operation.RequestBody = &openapi3.RequestBodyRef{Value: body}
	operation.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Submission accepted"),
		}),
		openapi3.WithStatus(http.StatusUnprocessableEntity, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Submission rejected"),
		}),
	)

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:   options.Title,
			Version: options.Version,
		},
		Paths: openapi3.NewPaths(openapi3.WithPath(options.Path, &openapi3.PathItem{Post: operation})),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{schemaName: openapi3.NewSchemaRef("", schema)},
		},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}
