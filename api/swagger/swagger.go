package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Advocates API",
        "description": "Searchable advocate directory with pagination, seeding and exports",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Advocates", "description": "Advocate directory search"},
        {"name": "Seed", "description": "Fixed dataset loading"},
        {"name": "Ops", "description": "Health and instrumentation"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Ops"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/status": {
            "get": {
                "tags": ["Ops"],
                "summary": "Instrumentation snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/advocates": {
            "get": {
                "tags": ["Advocates"],
                "summary": "List advocates",
                "description": "search matches name, city, degree and specialties case-insensitively and supersedes city and degree; specialty requires an exact element match",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "city", "in": "query", "type": "string"},
                    {"name": "degree", "in": "query", "type": "string"},
                    {"name": "specialty", "in": "query", "type": "string"},
                    {"name": "minYearsOfExperience", "in": "query", "type": "integer", "minimum": 0},
                    {"name": "limit", "in": "query", "type": "integer", "minimum": 1, "maximum": 100, "default": 10},
                    {"name": "offset", "in": "query", "type": "integer", "minimum": 0, "default": 0}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid query parameters", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/advocates/export": {
            "get": {
                "tags": ["Advocates"],
                "summary": "Export the advocate directory",
                "description": "Applies the list filter contract without a pagination window and streams a CSV or PDF attachment",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "city", "in": "query", "type": "string"},
                    {"name": "degree", "in": "query", "type": "string"},
                    {"name": "specialty", "in": "query", "type": "string"},
                    {"name": "minYearsOfExperience", "in": "query", "type": "integer", "minimum": 0}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "400": {"description": "Invalid query parameters", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/advocates/{id}": {
            "get": {
                "tags": ["Advocates"],
                "summary": "Get advocate detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "No such advocate", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/seed": {
            "post": {
                "tags": ["Seed"],
                "summary": "Seed the advocate directory",
                "responses": {
                    "200": {"description": "Seeded", "schema": {"$ref": "#/definitions/SeedResponse"}},
                    "409": {"description": "Already seeded", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "AdvocateResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "city": {"type": "string"},
                "degree": {"type": "string"},
                "specialties": {"type": "array", "items": {"type": "string"}},
                "yearsOfExperience": {"type": "integer"},
                "phoneNumber": {"type": "integer", "format": "int64"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"},
                "hasMore": {"type": "boolean"}
            }
        },
        "SeedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "count": {"type": "integer"},
                "advocates": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AdvocateResponse"}
                }
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
