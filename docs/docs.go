// Package docs holds the Swagger document served at /swagger/*. It is maintained by hand
// against the @Router annotations in internal/delivery/http/handlers.
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
        "/archive/cleanup": {
            "post": {
                "description": "Manuel trigger; the same job also runs on the cleanup cron",
                "produces": ["application/json"],
                "tags": ["Archive"],
                "summary": "Run archive cleanup now",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/translations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dubbing"],
                "summary": "Archived dubbings",
                "parameters": [
                    {"type": "integer", "description": "Max records (default 50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryRecordResponse"}}}
                }
            }
        },
        "/translations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dubbing"],
                "summary": "Tracked dubbing job",
                "parameters": [
                    {"type": "string", "description": "Dubbing ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JobResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/translations/{id}/archive": {
            "get": {
                "description": "Serves the copy stored by the archive worker, without calling the dubbing service",
                "produces": ["audio/mpeg"],
                "tags": ["Dubbing"],
                "summary": "Download archived dub",
                "parameters": [
                    {"type": "string", "description": "Dubbing ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/translations/{id}/audio": {
            "get": {
                "produces": ["audio/mpeg"],
                "tags": ["Dubbing"],
                "summary": "Stream dubbed audio",
                "parameters": [
                    {"type": "string", "description": "Dubbing ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Target language code", "name": "target_lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/translations/{id}/download": {
            "get": {
                "description": "Same stream as /audio, sent as an attachment with caching disabled",
                "produces": ["audio/mpeg"],
                "tags": ["Dubbing"],
                "summary": "Download dubbed audio",
                "parameters": [
                    {"type": "string", "description": "Dubbing ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Target language code", "name": "target_lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/translations/{id}/status": {
            "get": {
                "description": "Returns the dubbing service status document unchanged",
                "produces": ["application/json"],
                "tags": ["Dubbing"],
                "summary": "Dubbing status",
                "parameters": [
                    {"type": "string", "description": "Dubbing ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/translations/{id}/transcript": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Dubbing"],
                "summary": "Dubbing transcript",
                "parameters": [
                    {"type": "string", "description": "Dubbing ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "source or target (default target)", "name": "language", "in": "query"},
                    {"type": "string", "description": "Source language code", "name": "source_lang", "in": "query"},
                    {"type": "string", "description": "Target language code", "name": "target_lang", "in": "query"},
                    {"type": "string", "description": "srt or webvtt (default srt)", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/upload": {
            "post": {
                "description": "Forwards recorded speech to the dubbing service and returns the job id with its expected duration",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Dubbing"],
                "summary": "Submit recording for dubbing",
                "parameters": [
                    {"type": "file", "description": "Recorded audio", "name": "audio", "in": "formData", "required": true},
                    {"type": "string", "description": "Source language code (default en)", "name": "source_lang", "in": "formData"},
                    {"type": "string", "description": "Target language code (default es)", "name": "target_lang", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UploadResponse"}},
                    "400": {"description": "Missing audio or invalid language", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Dubbing service rejected the upload", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.HistoryRecordResponse": {
            "type": "object",
            "properties": {
                "audio_path": {"type": "string"},
                "checksum": {"type": "string"},
                "completed_at": {"type": "string"},
                "created_at": {"type": "string"},
                "dubbing_id": {"type": "string"},
                "expected_duration_sec": {"type": "number"},
                "id": {"type": "string"},
                "source_lang": {"type": "string"},
                "status": {"type": "string"},
                "target_lang": {"type": "string"}
            }
        },
        "dto.JobResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "dubbing_id": {"type": "string"},
                "expected_duration_sec": {"type": "number"},
                "source_lang": {"type": "string"},
                "status": {"type": "string"},
                "target_lang": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "dto.UploadResponse": {
            "type": "object",
            "properties": {
                "dubbing_id": {"type": "string"},
                "expected_duration_sec": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Dub Translator API",
	Description:      "Relay between recorded speech and the ElevenLabs dubbing API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
