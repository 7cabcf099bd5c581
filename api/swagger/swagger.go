package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Parent-Teacher Meeting API",
        "description": "Meeting scheduling between parents and teachers",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Cookie session login"},
        {"name": "Meetings", "description": "Meeting requests and decisions"},
        {"name": "Directory", "description": "Teacher and student lookups"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate a parent or teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Logged in; session cookie set"},
                    "400": {"description": "Missing required fields"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/auth/check": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Return the current session user or null",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Clear the session cookie",
                "responses": {
                    "200": {"description": "Cookie cleared"}
                }
            }
        },
        "/api/meetings": {
            "post": {
                "tags": ["Meetings"],
                "summary": "Request a meeting with a teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMeetingRequest"}}
                ],
                "responses": {
                    "200": {"description": "Meeting created as pending"},
                    "400": {"description": "Invalid payload"},
                    "500": {"description": "Storage failure"}
                }
            },
            "get": {
                "tags": ["Meetings"],
                "summary": "List meetings for a teacher or a parent",
                "parameters": [
                    {"name": "teacherId", "in": "query", "type": "integer"},
                    {"name": "parentId", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Neither teacherId nor parentId given"}
                }
            },
            "patch": {
                "tags": ["Meetings"],
                "summary": "Accept or reject a meeting (assigned teacher only)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateMeetingStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated meeting"},
                    "401": {"description": "No session"},
                    "403": {"description": "Meeting belongs to another teacher"},
                    "404": {"description": "Unknown meeting id"}
                }
            }
        },
        "/api/meetings/export": {
            "get": {
                "tags": ["Meetings"],
                "summary": "Download a teacher's schedule as CSV or PDF",
                "parameters": [
                    {"name": "teacherId", "in": "query", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Document bytes"},
                    "400": {"description": "Missing teacherId or bad format"}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Directory"],
                "summary": "List a parent's students",
                "parameters": [
                    {"name": "parentId", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK, possibly empty"},
                    "400": {"description": "Parent ID is required"}
                }
            }
        },
        "/api/teachers": {
            "get": {
                "tags": ["Directory"],
                "summary": "List all teachers",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["parent", "teacher"]}
            },
            "required": ["username", "password", "role"]
        },
        "CreateMeetingRequest": {
            "type": "object",
            "properties": {
                "teacher_id": {"type": "integer"},
                "parent_id": {"type": "integer"},
                "student_id": {"type": "integer"},
                "subject": {"type": "string"},
                "meeting_date": {"type": "string", "example": "2026-09-15"},
                "meeting_time": {"type": "string", "example": "14:30"},
                "reason": {"type": "string"},
                "message": {"type": "string"}
            },
            "required": ["teacher_id", "parent_id", "student_id", "subject", "meeting_date", "meeting_time", "reason"]
        },
        "UpdateMeetingStatusRequest": {
            "type": "object",
            "properties": {
                "meetingId": {"type": "integer"},
                "status": {"type": "string", "enum": ["accepted", "rejected"]},
                "message": {"type": "string"}
            },
            "required": ["meetingId", "status"]
        },
        "Meeting": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "teacher_id": {"type": "integer"},
                "parent_id": {"type": "integer"},
                "student_id": {"type": "integer"},
                "subject": {"type": "string"},
                "meeting_date": {"type": "string"},
                "meeting_time": {"type": "string"},
                "reason": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "accepted", "rejected"]},
                "created_at": {"type": "string"}
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
