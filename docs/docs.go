// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/register": {
            "post": {
                "description": "Creates an active user account. Username and email must be unique.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "User registration request",
                        "name": "registerRequest",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "User successfully registered", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "409": {"description": "Username or email already exists", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "422": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Authenticates a user by email and password and returns a signed bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {
                        "description": "User login request",
                        "name": "loginRequest",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Access token", "schema": {"$ref": "#/definitions/models.AccessToken"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "422": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}}
                }
            }
        },
        "/health-check": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthCheckResponse"}},
                    "500": {"description": "Database not available", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}}
                }
            }
        },
        "/threats/reports": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Stores a threat report and announces it to subscribers.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["threats"],
                "summary": "Submit a threat report",
                "parameters": [
                    {
                        "description": "Threat report",
                        "name": "threatReportRequest",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.ThreatReportRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Threat report created", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "422": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}}
                }
            }
        },
        "/threats/reports/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["threats"],
                "summary": "Get a threat report",
                "parameters": [
                    {"type": "integer", "description": "Threat report id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Threat report", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "422": {"description": "Invalid id", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.APIErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "message": {"type": "string"},
                "data": {},
                "documentation_link": {"type": "string"}
            }
        },
        "handlers.APIErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "validation_error"},
                "message": {"type": "string"},
                "details": {"$ref": "#/definitions/handlers.ErrorDetails"},
                "documentation_link": {"type": "string"}
            }
        },
        "handlers.ErrorDetails": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "handlers.HealthCheckResponse": {
            "type": "object",
            "properties": {
                "database": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "username": {"type": "string", "maxLength": 255, "example": "john_doe"},
                "email": {"type": "string", "maxLength": 255, "example": "john@example.com"},
                "password": {"type": "string", "maxLength": 72, "example": "secret123"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "john@example.com"},
                "password": {"type": "string", "example": "secret123"}
            }
        },
        "handlers.ThreatReportRequest": {
            "type": "object",
            "required": ["credibility", "email", "full_name", "indicator_address", "indicator_type"],
            "properties": {
                "indicator_type": {"type": "string", "enum": ["ip", "email", "domain", "file", "url", "user_agent"]},
                "indicator_address": {"type": "string", "maxLength": 255},
                "full_name": {"type": "string", "maxLength": 255},
                "email": {"type": "string", "maxLength": 255},
                "threat_actor": {"type": "string", "maxLength": 255},
                "industry": {"type": "string", "maxLength": 255},
                "tactic": {"type": "string", "maxLength": 63},
                "technique": {"type": "string", "maxLength": 63},
                "credibility": {"type": "integer"},
                "attack_logs": {"type": "string"}
            }
        },
        "models.AccessToken": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "type": {"type": "string", "example": "Bearer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "gw-threat-intel API",
	Description:      "Threat intelligence service: user accounts, bearer tokens and threat reports",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
