// Package docs registers the OpenAPI document served under /swagger.
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
        "/artworks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "List the catalog",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Artwork"}}}}
            },
            "post": {
                "description": "Rating defaults to 5, stock to 1 and availability to true.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Add an artwork to the catalog",
                "parameters": [{"description": "Artwork", "name": "artwork", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Artwork"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Artwork"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/artworks/available": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "List artworks marked available",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Artwork"}}}}
            }
        },
        "/artworks/category/{category}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "List artworks in a category",
                "parameters": [{"type": "string", "description": "Category, any letter case", "name": "category", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Artwork"}}}}
            }
        },
        "/artworks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Get an artwork by id",
                "parameters": [{"type": "string", "description": "Artwork id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Artwork"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Change some fields of an artwork",
                "parameters": [
                    {"type": "string", "description": "Artwork id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "update", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Artwork"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Artwork"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gateway.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Remove an artwork from the catalog",
                "parameters": [{"type": "string", "description": "Artwork id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gateway.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/testimonials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["testimonials"],
                "summary": "List approved testimonials",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Testimonial"}}}}
            },
            "post": {
                "description": "The testimonial stays hidden until an admin approves it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["testimonials"],
                "summary": "Submit a testimonial",
                "parameters": [{"description": "Testimonial", "name": "testimonial", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Testimonial"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Testimonial"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/admin/testimonials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List every testimonial",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Testimonial"}}}}
            }
        },
        "/admin/testimonials/pending": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List testimonials waiting for approval",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Testimonial"}}}}
            }
        },
        "/admin/testimonials/{id}/approve": {
            "put": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Approve a testimonial",
                "parameters": [{"type": "string", "description": "Testimonial id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Testimonial"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/admin/testimonials/{id}": {
            "delete": {
                "tags": ["admin"],
                "summary": "Delete a testimonial",
                "parameters": [{"type": "string", "description": "Testimonial id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List all orders",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}}}
            },
            "post": {
                "description": "Computes item subtotals and the order total, stores the order and queues a confirmation email.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create an order",
                "parameters": [{"description": "Order with items", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Order"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order by id",
                "parameters": [{"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Order"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["orders"],
                "summary": "Delete an order and its items",
                "parameters": [{"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/orders/{id}/status": {
            "put": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Set the status of an order",
                "parameters": [
                    {"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true},
                    {"enum": ["PENDING", "CONFIRMED", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"], "type": "string", "description": "New status", "name": "status", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gateway.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/orders/{id}/cancel": {
            "put": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Cancel an order",
                "parameters": [{"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Order"}},
                    "400": {"description": "Order already delivered", "schema": {"$ref": "#/definitions/gateway.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/orders/{id}/audit": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Audit trail of an order, newest first",
                "parameters": [
                    {"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Max entries", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/repository.AuditLog"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/orders/customer/{email}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders of a customer",
                "parameters": [{"type": "string", "description": "Customer email", "name": "email", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}}}
            }
        },
        "/orders/status/{status}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders with a status",
                "parameters": [{"type": "string", "description": "Status", "name": "status", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        },
        "/orders/pending": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders that are neither delivered nor cancelled",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}}}
            }
        },
        "/orders/completed": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List delivered orders",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}}}
            }
        },
        "/orders/cancelled": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List cancelled orders",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}}}
            }
        },
        "/orders/statistics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Order counts and delivered revenue",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.OrderStatistics"}}}
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a local account",
                "parameters": [{"description": "Account", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/gateway.apiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gateway.apiResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "parameters": [{"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gateway.apiResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/gateway.apiResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Account of the bearer token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gateway.apiResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/gateway.apiResponse"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Log in as an admin",
                "parameters": [{"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/gateway.adminLoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AdminLoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/gateway.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "gateway.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "models.Artwork": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "price": {"type": "string"},
                "rating": {"type": "integer"},
                "stock_quantity": {"type": "integer"},
                "available": {"type": "boolean"},
                "image_url": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.Testimonial": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"},
                "rating": {"type": "integer"},
                "approved": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "gateway.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "gateway.apiResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "data": {}}
        },
        "gateway.adminLoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "models.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customer_name": {"type": "string"},
                "customer_email": {"type": "string"},
                "customer_phone": {"type": "string"},
                "shipping_address": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.OrderItem"}},
                "total_amount": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "CONFIRMED", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"]},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.OrderItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "artwork_id": {"type": "string"},
                "artwork_title": {"type": "string"},
                "price": {"type": "string"},
                "quantity": {"type": "integer"},
                "subtotal": {"type": "string"}
            }
        },
        "models.OrderStatistics": {
            "type": "object",
            "properties": {
                "total_orders": {"type": "integer"},
                "pending_orders": {"type": "integer"},
                "completed_orders": {"type": "integer"},
                "cancelled_orders": {"type": "integer"},
                "total_revenue": {"type": "string"}
            }
        },
        "repository.AuditLog": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "action": {"type": "string"},
                "entity_id": {"type": "string"},
                "data": {"type": "object"},
                "created_at": {"type": "string"}
            }
        },
        "service.RegisterRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"}, "password": {"type": "string"}}
        },
        "service.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "service.AdminLoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "message": {"type": "string"}, "admin": {"type": "object"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Artshop API",
	Description:      "Orders, catalog, testimonials, accounts and admin login for the art shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
