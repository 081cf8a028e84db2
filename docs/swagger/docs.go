// Package swagger provides API documentation
package swagger

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
        "/videos": {
            "get": {
                "description": "Returns every registered video, newest first.",
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "List videos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/video.Video"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}}
                }
            },
            "post": {
                "description": "Records metadata for a video whose binaries have already been uploaded.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Register a video",
                "parameters": [
                    {"description": "Video metadata", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/requests.RegisterVideoRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/video.Video"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}}
                }
            }
        },
        "/videos/{key}": {
            "get": {
                "description": "Looks a video up by exact s3_key. Keys containing \"/\" must be percent-encoded.",
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Get a video by storage key",
                "parameters": [
                    {"type": "string", "description": "Percent-encoded s3_key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/video.Video"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}}
                }
            }
        },
        "/video-duration/{key}": {
            "get": {
                "description": "Returns the public URL of a video object. Duration is measured client side and is always null.",
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Resolve playback URL",
                "parameters": [
                    {"type": "string", "description": "Percent-encoded s3_key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.DurationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}}
                }
            }
        },
        "/generate-upload-url": {
            "get": {
                "description": "Generates a fresh videos/<id>.mp4 key and a presigned PUT URL bound to video/mp4.",
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Issue a video upload URL",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.UploadURLResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}}
                }
            }
        },
        "/generate-thumbnail-upload-url": {
            "get": {
                "description": "Generates a fresh thumbnails/<id>.<ext> key. fileType selects the bound image type; anything else falls back to image/jpeg.",
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Issue a thumbnail upload URL",
                "parameters": [
                    {"type": "string", "example": "image/png", "description": "Image MIME type", "name": "fileType", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.UploadURLResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports store reachability.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/responses.HealthResponse"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/responses.HealthResponse"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Reports process health only; never touches the store.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "platformerrors.HTTPErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "platformerrors.HTTPErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/platformerrors.HTTPErrorDetail"}
            }
        },
        "requests.RegisterVideoRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "Holiday footage"},
                "s3_key": {"type": "string", "example": "videos/2f1c0b7e-9f0e-4b4e-9d55-0b5c3f0a9e11.mp4"},
                "thumbnail_s3_key": {"type": "string", "example": "thumbnails/7a3e4c1d-5b2f-4e8a-9c0d-1e2f3a4b5c6d.png"},
                "title": {"type": "string", "example": "My trip"}
            }
        },
        "responses.DurationResponse": {
            "type": "object",
            "properties": {
                "duration": {"type": "number"},
                "videoUrl": {"type": "string"}
            }
        },
        "responses.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "responses.UploadURLResponse": {
            "type": "object",
            "properties": {
                "contentType": {"type": "string"},
                "expiresIn": {"type": "integer"},
                "key": {"type": "string"},
                "uploadUrl": {"type": "string"}
            }
        },
        "video.Video": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "s3_key": {"type": "string"},
                "thumbnail_s3_key": {"type": "string"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"}
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
	Title:            "Video API",
	Description:      "Video catalog and presigned upload service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
