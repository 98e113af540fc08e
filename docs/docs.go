// Package docs registers the OpenAPI description served under /swagger.
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
        "/": {
            "get": {"tags": ["pages"], "summary": "Home page", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Service and database health",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Database unreachable"}}
            }
        },
        "/venues": {
            "get": {"tags": ["venues"], "summary": "Venues grouped by city", "responses": {"200": {"description": "OK"}}}
        },
        "/venues/search": {
            "post": {
                "tags": ["venues"],
                "summary": "Case-insensitive venue name search",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [{"type": "string", "name": "search_term", "in": "formData"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/venues/create": {
            "get": {"tags": ["venues"], "summary": "Empty venue form", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["venues"],
                "summary": "Create a venue",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "city", "in": "formData", "required": true},
                    {"type": "string", "name": "state", "in": "formData", "required": true},
                    {"type": "string", "name": "address", "in": "formData"},
                    {"type": "string", "name": "phone", "in": "formData"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "genres", "in": "formData"},
                    {"type": "string", "name": "image_link", "in": "formData"},
                    {"type": "string", "name": "facebook_link", "in": "formData"},
                    {"type": "string", "name": "website", "in": "formData"},
                    {"type": "boolean", "name": "seeking_talent", "in": "formData"},
                    {"type": "string", "name": "seeking_description", "in": "formData"}
                ],
                "responses": {"200": {"description": "Home page with a flash"}, "400": {"description": "Form with field errors"}}
            }
        },
        "/venues/{id}": {
            "get": {
                "tags": ["venues"],
                "summary": "Venue detail with its shows",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["venues"],
                "summary": "Not implemented",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"501": {"description": "Not Implemented"}}
            }
        },
        "/venues/{id}/edit": {
            "get": {
                "tags": ["venues"],
                "summary": "Pre-filled venue form",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "tags": ["venues"],
                "summary": "Update the submitted venue fields",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"303": {"description": "Redirect to the venue page"}, "404": {"description": "Not Found"}}
            }
        },
        "/venues/{id}/image": {
            "post": {
                "tags": ["venues"],
                "summary": "Upload the venue image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "file", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to the venue page"}, "404": {"description": "Not Found"}}
            }
        },
        "/artists": {
            "get": {"tags": ["artists"], "summary": "Artist id and name list", "responses": {"200": {"description": "OK"}}}
        },
        "/artists/search": {
            "post": {
                "tags": ["artists"],
                "summary": "Case-insensitive artist name search",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [{"type": "string", "name": "search_term", "in": "formData"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/artists/create": {
            "get": {"tags": ["artists"], "summary": "Empty artist form", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["artists"],
                "summary": "Create an artist",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "city", "in": "formData", "required": true},
                    {"type": "string", "name": "state", "in": "formData", "required": true},
                    {"type": "string", "name": "phone", "in": "formData"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "genres", "in": "formData"},
                    {"type": "string", "name": "image_link", "in": "formData"},
                    {"type": "string", "name": "facebook_link", "in": "formData"},
                    {"type": "string", "name": "website", "in": "formData"},
                    {"type": "boolean", "name": "seeking_venue", "in": "formData"},
                    {"type": "string", "name": "seeking_description", "in": "formData"}
                ],
                "responses": {"200": {"description": "Home page with a flash"}, "400": {"description": "Form with field errors"}}
            }
        },
        "/artists/{id}": {
            "get": {
                "tags": ["artists"],
                "summary": "Artist detail with its shows",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/artists/{id}/edit": {
            "get": {
                "tags": ["artists"],
                "summary": "Pre-filled artist form",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "tags": ["artists"],
                "summary": "Update the submitted artist fields",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"303": {"description": "Redirect to the artist page"}, "404": {"description": "Not Found"}}
            }
        },
        "/artists/{id}/image": {
            "post": {
                "tags": ["artists"],
                "summary": "Upload the artist image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "file", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to the artist page"}, "404": {"description": "Not Found"}}
            }
        },
        "/shows": {
            "get": {"tags": ["shows"], "summary": "All shows with venue and artist names", "responses": {"200": {"description": "OK"}}}
        },
        "/shows/create": {
            "get": {"tags": ["shows"], "summary": "Empty show form", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["shows"],
                "summary": "Book a show",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"type": "integer", "name": "venue_id", "in": "formData", "required": true},
                    {"type": "integer", "name": "artist_id", "in": "formData", "required": true},
                    {"type": "string", "name": "start_time", "in": "formData"}
                ],
                "responses": {"200": {"description": "Home page with a flash"}, "400": {"description": "Form with field errors"}, "404": {"description": "Unknown venue or artist"}}
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
	Title:            "Fyyur API",
	Description:      "Venue, artist and show booking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
