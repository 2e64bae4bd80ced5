// Package docs registers the embedded OpenAPI document with swag so that
// echo-swagger can serve it under /swagger.
package docs

import (
	"perfumery/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Perfumery pipeline API",
	Description:      "Plant production, perfume processing, storage and sales.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(api.OpenAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
