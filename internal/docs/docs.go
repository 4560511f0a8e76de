// Package docs registers the OpenAPI description of the activities API with
// swag so http-swagger can serve it. Keep it in step with the annotations in
// internal/handler.
package docs

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

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
        "/activities": {
            "get": {
                "description": "Returns every activity keyed by name, in catalog order",
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "List activities",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"$ref": "#/definitions/model.Activity"}
                        }
                    }
                }
            }
        },
        "/activities/{name}/signup": {
            "post": {
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Sign up for an activity",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Student email", "name": "email", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/activities/{name}/unregister": {
            "post": {
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Drop an activity",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Student email", "name": "email", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.Activity": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "schedule": {"type": "string"},
                "max_participants": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Mergington High School Activities API",
	Description:      "Browse extracurricular activities and manage student sign-ups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Handler serves the Swagger UI and doc.json. Mount it at /swagger/*.
func Handler() http.HandlerFunc {
	return httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))
}
