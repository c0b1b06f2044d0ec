// Package docs embeds the gateway's OpenAPI document and registers it with
// swag so echo-swagger can serve it under /swagger/.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

// OpenAPI is the raw OpenAPI 3 document of the gateway API.
//
//go:embed openapi.json
var OpenAPI []byte

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "MOTA order lifecycle gateway",
	Description:      "Views and transitions dental lab orders through the MOTA production pipeline.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(OpenAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
