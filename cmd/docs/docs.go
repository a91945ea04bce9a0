// Package docs holds the OpenAPI description served by the swagger UI.
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
        "/categories": {
            "get": {
                "description": "Lists every category with its title, units and default selections",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List converter categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryResponse"}}
                    }
                }
            }
        },
        "/categories/{category}": {
            "get": {
                "description": "Returns one category. Switching to currency refreshes the exchange rates when they are stale.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Switch to a category",
                "parameters": [
                    {"type": "string", "description": "Category name", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}},
                    "404": {"description": "Category not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to load category", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/convert": {
            "post": {
                "description": "Converts a value between two units of a category. Non-numeric input yields an empty output.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["convert"],
                "summary": "Convert a value",
                "parameters": [
                    {"description": "Value, category and units", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ConvertRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConversionResponse"}},
                    "400": {"description": "Invalid request or unknown unit", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to convert", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/convert/swap": {
            "post": {
                "description": "Swaps the from/to units and converts the previous output back",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["convert"],
                "summary": "Swap units and convert",
                "parameters": [
                    {"description": "Current form state", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SwapRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConversionResponse"}},
                    "400": {"description": "Invalid request or unknown unit", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to convert", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/rates": {
            "get": {
                "description": "Reports the cached live rates, when they were fetched and whether they are stale",
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Show cached exchange rates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateStatusResponse"}}
                }
            }
        },
        "/rates/{base}/refresh": {
            "post": {
                "description": "Fetches rates for a base currency unless the cache is still fresh. A failed fetch is reported in the outcome, not as an error.",
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Refresh exchange rates",
                "parameters": [
                    {"maxLength": 3, "minLength": 3, "type": "string", "description": "Base Currency Code (3 letters)", "name": "base", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RefreshRatesResponse"}},
                    "400": {"description": "Unsupported base currency", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to refresh rates", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.CategoryResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "title": {"type": "string"},
                "units": {"type": "array", "items": {"$ref": "#/definitions/dto.UnitResponse"}},
                "defaultFrom": {"type": "string"},
                "defaultTo": {"type": "string"},
                "refresh": {"type": "string"}
            }
        },
        "dto.UnitResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "symbol": {"type": "string"}
            }
        },
        "dto.ConvertRequest": {
            "type": "object",
            "required": ["category", "from", "to"],
            "properties": {
                "value": {"type": "string"},
                "category": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"}
            }
        },
        "dto.SwapRequest": {
            "type": "object",
            "required": ["category", "from", "to"],
            "properties": {
                "output": {"type": "string"},
                "category": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"}
            }
        },
        "dto.ConversionResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "input": {"type": "number"},
                "result": {"type": "number"},
                "output": {"type": "string"},
                "empty": {"type": "boolean"},
                "rateInfo": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "dto.RateStatusResponse": {
            "type": "object",
            "properties": {
                "bases": {"type": "array", "items": {"type": "string"}},
                "rates": {"type": "object", "additionalProperties": {"type": "object", "additionalProperties": {"type": "number"}}},
                "lastUpdated": {"type": "string"},
                "stale": {"type": "boolean"}
            }
        },
        "dto.RefreshRatesResponse": {
            "type": "object",
            "properties": {
                "baseCurrency": {"type": "string"},
                "outcome": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Unit Converter API",
	Description:      "Converts values between units of length, weight, temperature, volume and currency.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
