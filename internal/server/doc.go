// Package server exposes dialect listing, inspection and harmonization over
// HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /dialects
//	POST /harmonize?dialect=ID|auto&format=json|csv|xlsx
//	POST /inspect?dialect=ID
//
// Input tables are sent as a multipart "file" field, or named by a "source"
// form value relative to Config.DataDir. The registry is rebuilt from the
// built-in dialects plus Config.DialectDir when files there change; requests
// in flight keep the registry they started with.
package server
