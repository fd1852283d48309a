// Package docs registers the OpenAPI document served under /swagger.
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
        "/users": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["users"], "summary": "Create user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/users/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Get user", "parameters": [{"type": "string", "description": "User ULID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Update user", "parameters": [{"type": "string", "description": "User ULID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/players": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["players"], "summary": "List players", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["players"], "summary": "Create player", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/players/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["players"], "summary": "Get player", "parameters": [{"type": "string", "description": "Player ULID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["players"], "summary": "Update player", "parameters": [{"type": "string", "description": "Player ULID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/questions": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["questions"], "summary": "List questions", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["questions"], "summary": "Create question", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}
        },
        "/questions/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["questions"], "summary": "Get question", "parameters": [{"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["questions"], "summary": "Update question", "parameters": [{"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/trivias": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["trivias"], "summary": "List trivias", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["trivias"], "summary": "Create trivia", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/trivias/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["trivias"], "summary": "Get trivia", "parameters": [{"type": "integer", "description": "Trivia ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["trivias"], "summary": "Update trivia", "parameters": [{"type": "integer", "description": "Trivia ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/trivias/{id}/submit": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["trivias"], "summary": "Submit trivia answers", "parameters": [{"type": "integer", "description": "Trivia ID", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/answers": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["answers"], "summary": "List answers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["answers"], "summary": "Submit answer", "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/participations": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["participations"], "summary": "List participations", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["participations"], "summary": "Start participation", "responses": {"201": {"description": "Created"}}}
        },
        "/participations/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["participations"], "summary": "Get participation", "parameters": [{"type": "integer", "description": "Participation ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["participations"], "summary": "Update participation", "parameters": [{"type": "integer", "description": "Participation ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/rankings": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["rankings"], "summary": "Global ranking", "responses": {"200": {"description": "OK"}}}
        },
        "/rankings/{trivia_id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["rankings"], "summary": "Ranking of one trivia", "parameters": [{"type": "integer", "description": "Trivia ID", "name": "trivia_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/rankings/{trivia_id}/{user_id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["rankings"], "summary": "Ranking of one user in one trivia", "parameters": [{"type": "integer", "description": "Trivia ID", "name": "trivia_id", "in": "path", "required": true}, {"type": "string", "description": "User ULID", "name": "user_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/rankings/user/{user_id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["rankings"], "summary": "Ranking of one user across trivias", "parameters": [{"type": "string", "description": "User ULID", "name": "user_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Type 'Bearer YOUR_JWT_TOKEN' to authorize.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "TalaTrivia API",
	Description:      "Trivia backend: users, questions, trivias, scored answers and rankings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
