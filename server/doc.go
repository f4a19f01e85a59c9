// Package server exposes the matching engine over HTTP.
//
// Endpoints:
//
//	POST /api/recommend     resume text -> detailed recommendations
//	POST /api/search        short query -> ranked matches
//	GET  /api/similar/{id}  roster member -> similar colleagues
//	GET  /health            liveness probe
//
// Responses use camelCase JSON and are CORS-permissive so a browser frontend
// can consume them directly.
package server
