// Package api embeds the OpenAPI document of the HTTP surface. The echo
// server contract in internal/generated/servers is generated from it.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.yaml openapi.json

//go:embed openapi.json
var OpenAPI []byte
