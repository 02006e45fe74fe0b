// Package openapi describes a field collection as the payload a host would
// receive when the exported form is submitted. SubmissionSchema builds the
// object schema, Document wraps it in a validated OpenAPI 3 description with a
// single POST operation and Import reverses the mapping for documents produced
// here. Renderer plugs the document into the render registry.
package openapi
