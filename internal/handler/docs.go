package handler

import (
	"net/http"

	"github.com/pkordes/schedule-api/spec"
)

// OpenAPISpec handles GET /openapi.yaml.
// Serving the embedded spec from the binary keeps the published contract and
// the running code in sync.
func (s *Server) OpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// Docs handles GET /docs.
// It serves the Scalar API reference, rendered client-side from the document
// served by OpenAPISpec.
func (s *Server) Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docsPage)
}

var docsPage = []byte(`<!doctype html>
<html>
  <head>
    <title>Schedule Management API</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="/openapi.yaml"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>
`)
