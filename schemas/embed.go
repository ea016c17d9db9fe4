// Package schemas holds the JSON Schema documents for structured data exchanged with the model.
package schemas

import "embed"

// Files contains every *.schema.json document in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Opportunities is the schema for the discovery model's response.
const Opportunities = "opportunities.schema.json"
