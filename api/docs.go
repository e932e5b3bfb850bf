// Package api holds the OpenAPI document of the service, generated from the
// handler annotations. Regenerate it with go generate after changing them.
package api

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
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "RootResponse"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/admin/dashboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "User counts",
                "responses": {
                    "200": {
                        "description": "DashboardResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/expense-distribution": {
            "get": {
                "description": "Returns the sum of all expenses per expense type",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Expense distribution",
                "responses": {
                    "200": {
                        "description": "DistributionResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/feedback": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Recent feedback",
                "responses": {
                    "200": {
                        "description": "FeedbackListResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/metrics": {
            "get": {
                "description": "Returns user numbers and the transaction and tithe volumes of all users",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Platform metrics",
                "responses": {
                    "200": {
                        "description": "MetricsResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/plans": {
            "get": {
                "description": "Returns all plans, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Plans"
                ],
                "summary": "List plans",
                "responses": {
                    "200": {
                        "description": "PlanListResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "post": {
                "description": "Creates a plan. Fields that are not sent use the plan defaults.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Plans"
                ],
                "summary": "Create plan",
                "parameters": [
                    {
                        "description": "Plan",
                        "name": "plan",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "PlanResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Plans"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/admin/plans/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Plans"
                ],
                "summary": "Get plan",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PlanResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "put": {
                "description": "Updates the fields of the plan that are set in the request body",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Plans"
                ],
                "summary": "Update plan",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Plan",
                        "name": "plan",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PlanResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "patch": {
                "description": "Updates the fields of the plan that are set in the request body",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Plans"
                ],
                "summary": "Update plan",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Plan",
                        "name": "plan",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PlanResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Plans"
                ],
                "summary": "Delete plan",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Plans"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/admin/storage": {
            "get": {
                "description": "Returns all stored files that have not been deleted, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Storage"
                ],
                "summary": "List stored files",
                "responses": {
                    "200": {
                        "description": "StorageObjectListResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/storage/{id}": {
            "delete": {
                "description": "Deletes the file from the blob store and marks the record as deleted",
                "tags": [
                    "Storage"
                ],
                "summary": "Delete stored file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "description": "Returns all users with the number of months they own, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "UserListResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/users/invitations": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "List pending invitations",
                "responses": {
                    "200": {
                        "description": "InvitationListResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/users/invitations/{id}/resend": {
            "post": {
                "description": "Revokes the pending invitation and sends a new one to the same address",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Resend invitation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the invitation",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "InvitationResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/users/invitations/{id}/revoke": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Revoke invitation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the invitation",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "SuccessResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/users/invite": {
            "post": {
                "description": "Sends an invitation to sign up to the email address",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Invite user",
                "parameters": [
                    {
                        "description": "Invitation",
                        "name": "invitation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "InvitationResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/users/sync-roles": {
            "post": {
                "description": "Persists the admin role for every user matched by the admin allow-lists. Every grant is recorded.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Synchronize admin roles",
                "responses": {
                    "200": {
                        "description": "RoleGrantListResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/admin/users/{id}": {
            "put": {
                "description": "Updates name, email and active status of a user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Update user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "UserResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "403": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "patch": {
                "description": "Updates name, email and active status of a user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Update user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "UserResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "403": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "delete": {
                "description": "Deactivates a user. The user's data is kept.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Deactivate user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "UserResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "403": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Admin"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/admin/users/{id}/activate": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "Activate user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "UserResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/expenses": {
            "post": {
                "description": "Creates an expense in one of the caller's months",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expenses"
                ],
                "summary": "Create expense",
                "parameters": [
                    {
                        "description": "Expense",
                        "name": "expense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "ExpenseResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/expenses/order": {
            "post": {
                "description": "Sets the positions of expenses in their list. Either all positions are updated or none.",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Expenses"
                ],
                "summary": "Reorder expenses",
                "parameters": [
                    {
                        "description": "Positions",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/expenses/{id}": {
            "patch": {
                "description": "Updates the fields of an expense that are set in the request body",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expenses"
                ],
                "summary": "Update expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Expense",
                        "name": "expense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ExpenseResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Delete expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/expenses/{id}/paid": {
            "post": {
                "description": "Marks the expense as paid with its total amount, or as unpaid",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expenses"
                ],
                "summary": "Set paid status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Paid",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ExpenseResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/feedback": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Send feedback",
                "parameters": [
                    {
                        "description": "Feedback",
                        "name": "feedback",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "FeedbackResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/incomes": {
            "post": {
                "description": "Creates an income in one of the caller's months",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Create income",
                "parameters": [
                    {
                        "description": "Income",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "IncomeResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Items"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/incomes/order": {
            "post": {
                "description": "Sets the positions of incomes in their list. Either all positions are updated or none.",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Reorder incomes",
                "parameters": [
                    {
                        "description": "Positions",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/incomes/{id}": {
            "patch": {
                "description": "Updates the fields of an income that are set in the request body",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Update income",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Income",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "IncomeResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Incomes"
                ],
                "summary": "Delete income",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Items"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/incomes/{id}/received": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Set received status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Received",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "IncomeResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/incomes/{id}/tithe": {
            "post": {
                "description": "Marks the tithe on this income as paid or unpaid",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Set tithe status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Tithe paid",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "IncomeResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/investments": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Investments"
                ],
                "summary": "Create investment",
                "parameters": [
                    {
                        "description": "Investment",
                        "name": "investment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "InvestmentResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/investments/order": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Investments"
                ],
                "summary": "Reorder investments",
                "parameters": [
                    {
                        "description": "Positions",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/investments/{id}": {
            "patch": {
                "description": "Updates the fields that are set in the request body",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Investments"
                ],
                "summary": "Update investment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Investment",
                        "name": "investment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "InvestmentResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Investments"
                ],
                "summary": "Delete investment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/investments/{id}/paid": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Investments"
                ],
                "summary": "Set paid status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Paid",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "InvestmentResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/me": {
            "get": {
                "description": "Returns the profile of the caller and whether the caller is an administrator",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Get current user",
                "responses": {
                    "200": {
                        "description": "MeResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "403": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/me/settings": {
            "patch": {
                "description": "Updates the settings of the caller that are set in the request body",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Update settings",
                "parameters": [
                    {
                        "description": "Settings",
                        "name": "settings",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "MeResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/misc-expenses": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Misc expenses"
                ],
                "summary": "Create misc expense",
                "parameters": [
                    {
                        "description": "MiscExpense",
                        "name": "miscExpense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "MiscExpenseResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/misc-expenses/order": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Misc expenses"
                ],
                "summary": "Reorder misc expenses",
                "parameters": [
                    {
                        "description": "Positions",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/misc-expenses/{id}": {
            "patch": {
                "description": "Updates the fields that are set in the request body",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Misc expenses"
                ],
                "summary": "Update misc expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "MiscExpense",
                        "name": "miscExpense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "MiscExpenseResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Misc expenses"
                ],
                "summary": "Delete misc expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/misc-expenses/{id}/paid": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Misc expenses"
                ],
                "summary": "Set paid status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Paid",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "MiscExpenseResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/months": {
            "get": {
                "description": "Returns the periods the caller has a month for, oldest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Months"
                ],
                "summary": "List months",
                "responses": {
                    "200": {
                        "description": "MonthListResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Months"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/months/create-empty": {
            "post": {
                "description": "Creates an empty month. Fails if the month already exists.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Months"
                ],
                "summary": "Create empty month",
                "parameters": [
                    {
                        "description": "Month",
                        "name": "month",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "CreateEmptyMonthResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "403": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/months/current": {
            "get": {
                "description": "Returns the month for the current period with all items and totals. The month is created if it does not exist.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Months"
                ],
                "summary": "Get current month",
                "responses": {
                    "200": {
                        "description": "MonthResponse"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/months/{year}/{month}": {
            "get": {
                "description": "Returns the month for a period with all items and totals. The month is created if it does not exist.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Months"
                ],
                "summary": "Get month",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month, 1 to 12",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "MonthResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "delete": {
                "description": "Deletes the month with all its items",
                "tags": [
                    "Months"
                ],
                "summary": "Delete month",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month, 1 to 12",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/months/{year}/{month}/duplicate": {
            "post": {
                "description": "Copies incomes, standard expenses and investments of the month into the following period, with their status reset",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Months"
                ],
                "summary": "Duplicate month",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month, 1 to 12",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "MonthResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/months/{year}/{month}/tithe": {
            "post": {
                "description": "Marks the tithe of the month as paid with 10% of the income, or as unpaid",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Months"
                ],
                "summary": "Set tithe status",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month, 1 to 12",
                        "name": "month",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Paid",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "MonthResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "404": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/public/plans": {
            "get": {
                "description": "Returns the active plans, cheapest first. This endpoint does not require authentication.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Plans"
                ],
                "summary": "List active plans",
                "responses": {
                    "200": {
                        "description": "PlanListResponse"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Plans"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/upload": {
            "post": {
                "description": "Stores a file with public access. The file is sent in the multipart form field \"file\".",
                "consumes": [
                    "mpfd"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Storage"
                ],
                "summary": "Upload file",
                "parameters": [
                    {
                        "type": "file",
                        "description": "File",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "UploadResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "413": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/api/webhooks/users": {
            "post": {
                "description": "Receives user.created, user.updated and user.deleted events. The body is signed with the webhook secret.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Webhooks"
                ],
                "summary": "Identity provider webhook",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Hex encoded HMAC-SHA256 of timestamp.body",
                        "name": "x-webhook-signature",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Unix timestamp in seconds or milliseconds",
                        "name": "x-webhook-timestamp",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "WebhookResponse"
                    },
                    "400": {
                        "description": "httperror.Error"
                    },
                    "401": {
                        "description": "httperror.Error"
                    },
                    "422": {
                        "description": "httperror.Error"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns 204 if the database answers, 500 otherwise",
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "httperror.Error"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "VersionResponse"
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Santo Dinheiro",
	Description:      "Monthly budget planning with tithe tracking, investments and administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
