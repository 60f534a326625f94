// Package docs is generated by swag init. Regenerate after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {"get": {"tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}},
        "/countries": {"get": {"tags": ["countries"], "summary": "List country progress records", "responses": {"200": {"description": "OK"}}}},
        "/countries/{id}": {"get": {"tags": ["countries"], "summary": "Select a country", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "name", "in": "query"}, {"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/countries/{id}/detail": {"get": {"tags": ["countries"], "summary": "Select a country with its generated insight", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "name", "in": "query"}, {"type": "string", "name": "status", "in": "query"}, {"type": "string", "name": "viewer", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/map/regions": {"get": {"tags": ["countries"], "summary": "Region fills for the world map", "responses": {"200": {"description": "OK"}}}},
        "/opportunities": {"get": {"tags": ["opportunities"], "summary": "List marketplace opportunities", "responses": {"200": {"description": "OK"}}}},
        "/opportunities/{id}": {"get": {"tags": ["opportunities"], "summary": "Get an opportunity", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/opportunities/{id}/projection": {"get": {"tags": ["opportunities"], "summary": "Project cost, returns and free nights for a share count", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "shares", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/opportunities/{id}/purchases": {"post": {"tags": ["purchases"], "summary": "Buy shares of an opportunity", "consumes": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}},
        "/purchases/{id}": {"get": {"tags": ["purchases"], "summary": "Get an investment by id", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/profiles/{id}": {"get": {"tags": ["profiles"], "summary": "Profile with portfolio in the requested currency", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "currency", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/profiles/{id}/investments": {"get": {"tags": ["purchases"], "summary": "List the investments of a profile, newest first", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/dashboard/leaderboard": {"get": {"tags": ["dashboard"], "summary": "Top community members by points", "responses": {"200": {"description": "OK"}}}},
        "/dashboard/stats": {"get": {"tags": ["dashboard"], "summary": "Network headline numbers", "responses": {"200": {"description": "OK"}}}},
        "/currency/format": {"get": {"tags": ["currency"], "summary": "Convert and format a USD amount", "parameters": [{"type": "number", "name": "amount", "in": "query", "required": true}, {"type": "string", "name": "code", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Nextribe API",
	Description:      "Expansion map, marketplace, share purchases and community dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
