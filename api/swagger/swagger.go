package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TA Portal API",
        "description": "Teaching-assistant allocation portal",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login and session management"},
        {"name": "Admin", "description": "Course directory and teacher assignment"},
        {"name": "Slots", "description": "TA slot lifecycle"},
        {"name": "Applications", "description": "Application review"},
        {"name": "Students", "description": "Application intake"},
        {"name": "Exports", "description": "Application downloads"}
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
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Refresh access token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Expired or revoked token"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Revoke refresh token",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/addCourse": {
            "post": {
                "tags": ["Admin"],
                "summary": "Add a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/deleteCourse": {
            "post": {
                "tags": ["Admin"],
                "summary": "Delete a course",
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/getCourses": {
            "get": {
                "tags": ["Admin"],
                "summary": "List courses with assigned teachers",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/getTeachers": {
            "get": {
                "tags": ["Admin"],
                "summary": "List the teacher roster",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/updateCourse": {
            "post": {
                "tags": ["Admin"],
                "summary": "Merge a partial course update",
                "responses": {
                    "200": {"description": "Updated course"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/assignCourseToTeacher": {
            "post": {
                "tags": ["Admin"],
                "summary": "Assign a course to a teacher",
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/getSlotbySectionId": {
            "post": {
                "tags": ["Slots"],
                "summary": "List slots under a section",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/createSlot": {
            "post": {
                "tags": ["Slots"],
                "summary": "Post a TA slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSlotRequest"}}
                ],
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/deleteSlot": {
            "post": {
                "tags": ["Slots"],
                "summary": "Delete an owned slot",
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/updateSlot/{sectionId}": {
            "patch": {
                "tags": ["Slots"],
                "summary": "Update slot description and requirements",
                "parameters": [
                    {"name": "sectionId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/getCoursesByTeacher": {
            "get": {
                "tags": ["Slots"],
                "summary": "List the caller's assigned courses",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Teacher not found"}
                }
            }
        },
        "/viewApplications": {
            "get": {
                "tags": ["Applications"],
                "summary": "List applications against the caller's slots",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Teacher not found"}
                }
            }
        },
        "/viewStudentProfile": {
            "post": {
                "tags": ["Applications"],
                "summary": "Look up an applicant's profile",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/acceptApplication/{slotId}/{studentEmail}": {
            "patch": {
                "tags": ["Applications"],
                "summary": "Accept a pending application",
                "parameters": [
                    {"name": "slotId", "in": "path", "required": true, "type": "string"},
                    {"name": "studentEmail", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/rejectApplication/{slotId}/{studentEmail}": {
            "patch": {
                "tags": ["Applications"],
                "summary": "Reject an application",
                "parameters": [
                    {"name": "slotId", "in": "path", "required": true, "type": "string"},
                    {"name": "studentEmail", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/makeFavourite/{sectionId}/{studentEmail}": {
            "patch": {
                "tags": ["Applications"],
                "summary": "Mark an application as favourite",
                "parameters": [
                    {"name": "sectionId", "in": "path", "required": true, "type": "string"},
                    {"name": "studentEmail", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/removeFavourite/{sectionId}/{studentEmail}": {
            "patch": {
                "tags": ["Applications"],
                "summary": "Clear the favourite flag",
                "parameters": [
                    {"name": "sectionId", "in": "path", "required": true, "type": "string"},
                    {"name": "studentEmail", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/viewFavourites": {
            "get": {
                "tags": ["Applications"],
                "summary": "List favourited applications",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/applyToSlot": {
            "post": {
                "tags": ["Students"],
                "summary": "Submit an application to a slot",
                "responses": {
                    "200": {"description": "Legacy msg payload", "schema": {"$ref": "#/definitions/LegacyMessage"}}
                }
            }
        },
        "/exportApplications": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download applications as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Attachment"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "AddCourseRequest": {
            "type": "object",
            "required": ["courseID", "courseName"],
            "properties": {
                "courseID": {"type": "string"},
                "courseName": {"type": "string"},
                "department": {"type": "string"},
                "credits": {"type": "integer"}
            }
        },
        "CreateSlotRequest": {
            "type": "object",
            "required": ["sectionId", "courseId", "applicationDeadline"],
            "properties": {
                "sectionId": {"type": "string"},
                "courseId": {"type": "string"},
                "requirements": {"type": "string"},
                "duration": {"type": "string"},
                "workHours": {"type": "integer"},
                "applicationDeadline": {"type": "string", "format": "date-time"},
                "description": {"type": "string"}
            }
        },
        "LegacyMessage": {
            "type": "object",
            "properties": {
                "msg": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
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
