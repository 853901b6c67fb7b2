// Package docs is generated by swag from the handler annotations.
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
        "/api/documents": {
            "get": {
                "description": "Lists the documents known to the search backend. Answers an empty list with an error marker when the backend is unavailable.",
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "List backend documents",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.DocumentsResponse"}
                    }
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Reports whether the search backend is reachable.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Backend health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.HealthResponse"}
                    }
                }
            }
        },
        "/api/search": {
            "get": {
                "description": "Forwards the query to the search backend, falling back to built-in results when it fails. Always answers 200.",
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search ECSS documents",
                "parameters": [
                    {"type": "string", "description": "Search query", "name": "q", "in": "query"},
                    {"type": "string", "description": "Exact branch", "name": "branch", "in": "query"},
                    {"type": "string", "description": "Exact discipline", "name": "discipline", "in": "query"},
                    {"type": "string", "description": "Exact revision", "name": "revision", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.Response"}
                    }
                }
            },
            "post": {
                "description": "Body form of the search used by the search page. Always answers 200.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search ECSS documents",
                "parameters": [
                    {
                        "description": "Query and filters",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.SearchRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.Response"}
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.SearchFilters": {
            "type": "object",
            "properties": {
                "branch": {"type": "string"},
                "discipline": {"type": "string"},
                "revision": {"type": "string"}
            }
        },
        "handlers.SearchRequest": {
            "type": "object",
            "properties": {
                "filters": {"$ref": "#/definitions/handlers.SearchFilters"},
                "query": {"type": "string"}
            }
        },
        "models.Document": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "id": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "models.DocumentsResponse": {
            "type": "object",
            "properties": {
                "documents": {"type": "array", "items": {"$ref": "#/definitions/models.Document"}},
                "error": {"type": "string"},
                "total": {"type": "integer"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "backend_connected": {"type": "boolean"},
                "status": {"type": "string"}
            }
        },
        "models.Response": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "query": {"type": "string"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/models.Result"}},
                "total": {"type": "integer"}
            }
        },
        "models.Result": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "id": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": {"type": "string"}},
                "score": {"type": "number"},
                "title": {"type": "string"}
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
	Title:            "ECSS Navigator API",
	Description:      "Search front end for ECSS standards with a built-in fallback corpus.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
