// Package api carries the committed OpenAPI contract of the service.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI document served at /openapi.json and
// loaded by the generated server seam.
//
//go:embed openapi.yml
var OpenAPISpec []byte
