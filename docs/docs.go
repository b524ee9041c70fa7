// Package docs registers the Swagger document served under /swagger.
// It is maintained by hand alongside the handler annotations.
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
        "/destinations/{destination}/activities": {
            "get": {
                "description": "Returns the stored activities for a destination.",
                "produces": ["application/json"],
                "tags": ["Activities"],
                "summary": "List catalog activities",
                "parameters": [
                    {"type": "string", "description": "Destination name", "name": "destination", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/types.CatalogActivity"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            },
            "post": {
                "description": "Stores new activities for a destination. Names already in the catalog are skipped.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Activities"],
                "summary": "Add catalog activities",
                "parameters": [
                    {"type": "string", "description": "Destination name", "name": "destination", "in": "path", "required": true},
                    {"description": "Activities to add", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.AddActivitiesRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/types.CatalogActivity"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/itinerary/plan": {
            "post": {
                "description": "Builds a day-by-day itinerary with morning, afternoon and evening slots.\nWhen the retry budget runs out the best-effort result is returned with complete=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Itinerary"],
                "summary": "Plan an itinerary",
                "parameters": [
                    {"description": "Trip parameters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.PlanItineraryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        }
    },
    "definitions": {
        "api.Response": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "types.Activity": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["cultural", "leisure", "sightseeing", "food"]}
            }
        },
        "types.AddActivitiesRequest": {
            "type": "object",
            "properties": {
                "activities": {"type": "array", "items": {"$ref": "#/definitions/types.NewActivityRequest"}}
            }
        },
        "types.CatalogActivity": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "destination": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "types.DayAssignment": {
            "type": "object",
            "properties": {
                "day": {"type": "integer"},
                "slots": {"$ref": "#/definitions/types.DaySlots"}
            }
        },
        "types.DaySlots": {
            "type": "object",
            "properties": {
                "afternoon": {"type": "array", "items": {"$ref": "#/definitions/types.Activity"}},
                "evening": {"type": "array", "items": {"$ref": "#/definitions/types.Activity"}},
                "morning": {"type": "array", "items": {"$ref": "#/definitions/types.Activity"}}
            }
        },
        "types.ItineraryResponse": {
            "type": "object",
            "properties": {
                "attempts": {"type": "integer"},
                "budget_level": {"type": "string"},
                "complete": {"type": "boolean"},
                "destination": {"type": "string"},
                "itinerary": {"type": "array", "items": {"$ref": "#/definitions/types.DayAssignment"}},
                "number_of_days": {"type": "integer"},
                "plan_id": {"type": "string"},
                "response": {"type": "string"},
                "seed": {"type": "integer"},
                "travel_style": {"type": "string"},
                "validation_errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "types.NewActivityRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Belem Tower"},
                "type": {"type": "string", "example": "sightseeing"}
            }
        },
        "types.PlanItineraryRequest": {
            "type": "object",
            "properties": {
                "budget_level": {"type": "string", "example": "medium"},
                "destination": {"type": "string", "example": "Lisbon"},
                "number_of_days": {"type": "integer", "example": 3},
                "seed": {"type": "integer"},
                "travel_style": {"type": "string", "example": "balanced"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "TripWeave API",
	Description:      "Itinerary planning service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
