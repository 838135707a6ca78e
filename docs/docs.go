// Package docs embeds the OpenAPI description served at /swagger/spec.
package docs

import _ "embed"

//go:embed api/openapi.yaml
var OpenAPI []byte
