package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SwaggerHandler serves the OpenAPI document and a Swagger UI page for it.
type SwaggerHandler struct {
	spec []byte
}

// NewSwaggerHandler creates a SwaggerHandler for the given OpenAPI YAML.
func NewSwaggerHandler(spec []byte) *SwaggerHandler {
	return &SwaggerHandler{spec: spec}
}

// Spec serves the raw OpenAPI YAML.
func (h *SwaggerHandler) Spec(c *gin.Context) {
	if len(h.spec) == 0 {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", h.spec)
}

// UI serves a Swagger UI page that loads /swagger/spec.
func (h *SwaggerHandler) UI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
}

const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Buy Me a Coffee - API Docs</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/spec',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
