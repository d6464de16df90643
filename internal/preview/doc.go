// Package preview serves tree documents as rendered HTML for local
// development.
//
// Every GET request maps to a tree document below the served directory:
// "/" is index.yaml, "/docs/intro" is docs/intro.yaml (or .yml, .json).
// The document is decoded, rendered with the guarded renderer and returned
// with a small live-reload script appended. A polling watcher notices
// edits and tells connected browsers to reload over a WebSocket.
//
// Routes:
//   - GET /healthz: liveness probe
//   - GET /metrics: Prometheus metrics, when a handler is configured
//   - GET /_markup/reload: live-reload WebSocket
//   - GET /_markup/source/*: the decoded tree re-encoded as YAML
//   - GET /*: the rendered document
package preview
