// Package docs registers the OpenAPI description served under /swagger.
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
		"/health": {
			"get": {
				"tags": [
					"Health"
				],
				"summary": "Liveness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/projects": {
			"get": {
				"tags": [
					"Projects"
				],
				"summary": "List projects",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Service Unavailable"
					}
				}
			},
			"post": {
				"tags": [
					"Projects"
				],
				"summary": "Create a project",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "CreateProjectRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CreateProjectRequest"
						}
					}
				]
			}
		},
		"/projects/{id}": {
			"get": {
				"tags": [
					"Projects"
				],
				"summary": "Get a project",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"Projects"
				],
				"summary": "Update a project",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "UpdateProjectRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.UpdateProjectRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"Projects"
				],
				"summary": "Delete a project, orphaning its tasks",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tasks": {
			"get": {
				"tags": [
					"Tasks"
				],
				"summary": "List tasks",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Service Unavailable"
					}
				}
			},
			"post": {
				"tags": [
					"Tasks"
				],
				"summary": "Create a task (always starts in todo)",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "CreateTaskRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CreateTaskRequest"
						}
					}
				]
			}
		},
		"/tasks/stats": {
			"get": {
				"tags": [
					"Tasks"
				],
				"summary": "Task counts by status and priority plus deadline figures",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Service Unavailable"
					}
				}
			}
		},
		"/tasks/alerts": {
			"get": {
				"tags": [
					"Tasks"
				],
				"summary": "Open tasks due within a week, overdue first",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Service Unavailable"
					}
				}
			}
		},
		"/tasks/{id}": {
			"get": {
				"tags": [
					"Tasks"
				],
				"summary": "Get a task with subtasks, comments and attachments",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"Tasks"
				],
				"summary": "Update a task",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "UpdateTaskRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.UpdateTaskRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"Tasks"
				],
				"summary": "Delete a task",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tasks/{id}/subtasks": {
			"post": {
				"tags": [
					"Subtasks"
				],
				"summary": "Add a subtask",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "CreateSubtaskRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CreateSubtaskRequest"
						}
					}
				]
			}
		},
		"/subtasks/{id}": {
			"patch": {
				"tags": [
					"Subtasks"
				],
				"summary": "Rename a subtask",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "UpdateSubtaskRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.UpdateSubtaskRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"Subtasks"
				],
				"summary": "Delete a subtask",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/subtasks/{id}/toggle": {
			"patch": {
				"tags": [
					"Subtasks"
				],
				"summary": "Set subtask completion",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "ToggleSubtaskRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ToggleSubtaskRequest"
						}
					}
				]
			}
		},
		"/tasks/{id}/comments": {
			"post": {
				"tags": [
					"Comments"
				],
				"summary": "Comment on a task",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "AddCommentRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.AddCommentRequest"
						}
					}
				]
			}
		},
		"/comments/{id}": {
			"delete": {
				"tags": [
					"Comments"
				],
				"summary": "Delete a comment",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tasks/{id}/attachments": {
			"post": {
				"tags": [
					"Attachments"
				],
				"summary": "Attach a stored file to a task",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "AttachFileRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.AttachFileRequest"
						}
					}
				]
			}
		},
		"/tasks/{id}/attachments/{file_id}": {
			"delete": {
				"tags": [
					"Attachments"
				],
				"summary": "Detach a file from a task",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"503": {
						"description": "Service Unavailable"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "file_id",
						"name": "file_id",
						"in": "path",
						"required": true
					}
				]
			}
		}
	},
	"definitions": {
		"handler.CreateProjectRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"color": {
					"type": "string"
				},
				"created_by": {
					"type": "string"
				}
			}
		},
		"handler.UpdateProjectRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"color": {
					"type": "string"
				},
				"archived": {
					"type": "boolean"
				}
			}
		},
		"handler.CreateTaskRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"project_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				},
				"assignee": {
					"type": "string"
				},
				"deadline": {
					"type": "string"
				}
			}
		},
		"handler.UpdateTaskRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"project_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				},
				"assignee": {
					"type": "string"
				},
				"deadline": {
					"type": "string"
				},
				"clear_deadline": {
					"type": "boolean"
				}
			}
		},
		"handler.CreateSubtaskRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"sort_order": {
					"type": "integer"
				}
			}
		},
		"handler.UpdateSubtaskRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				}
			}
		},
		"handler.ToggleSubtaskRequest": {
			"type": "object",
			"properties": {
				"completed": {
					"type": "boolean"
				}
			}
		},
		"handler.AddCommentRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"author": {
					"type": "string"
				}
			}
		},
		"handler.AttachFileRequest": {
			"type": "object",
			"properties": {
				"file_id": {
					"type": "string"
				},
				"attached_by": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Service API",
	Description:      "Projects, tasks, subtasks, comments and attachments with deadline alerts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
