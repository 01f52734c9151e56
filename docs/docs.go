// Package docs holds the OpenAPI document served under /swagger. It mirrors
// the swag annotations on the handlers in internal/api/handler; refresh it
// with `go generate ./cmd/server` after changing a route.
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
        "/api/admin/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Credentials",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.loginRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.loginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.loginFailure"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.loginLimited"
                        }
                    }
                },
                "summary": "Admin login",
                "tags": [
                    "auth"
                ]
            }
        },
        "/api/admin/auth/logout": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    }
                },
                "summary": "Admin logout",
                "tags": [
                    "auth"
                ]
            }
        },
        "/api/admin/auth/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.meResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Current user",
                "tags": [
                    "auth"
                ]
            }
        },
        "/api/admin/categories": {
            "delete": {
                "parameters": [
                    {
                        "description": "Category ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete category",
                "tags": [
                    "categories"
                ]
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Category"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List categories",
                "tags": [
                    "categories"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Category",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createCategoryRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Create category",
                "tags": [
                    "categories"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateCategoryRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update category",
                "tags": [
                    "categories"
                ]
            }
        },
        "/api/admin/categories/reorder": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Ordered ids",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.reorderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    }
                },
                "summary": "Reorder categories",
                "tags": [
                    "categories"
                ]
            }
        },
        "/api/admin/config": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Get configuration",
                "tags": [
                    "config"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Keys to upsert",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update configuration",
                "tags": [
                    "config"
                ]
            }
        },
        "/api/admin/dashboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Dashboard"
                        }
                    }
                },
                "summary": "Dashboard counters",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/api/admin/galleries": {
            "delete": {
                "parameters": [
                    {
                        "description": "Gallery ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete gallery",
                "tags": [
                    "galleries"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Category filter",
                        "in": "query",
                        "name": "categoria_id",
                        "type": "string"
                    },
                    {
                        "description": "Only home-page galleries",
                        "in": "query",
                        "name": "principal",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Gallery"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List galleries",
                "tags": [
                    "galleries"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Gallery",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createGalleryRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Gallery"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Create gallery",
                "tags": [
                    "galleries"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateGalleryRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Gallery"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update gallery",
                "tags": [
                    "galleries"
                ]
            }
        },
        "/api/admin/galleries/photos": {
            "delete": {
                "parameters": [
                    {
                        "description": "Photo ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete photo",
                "tags": [
                    "photos"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Gallery ID",
                        "in": "query",
                        "name": "galeria_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Photo"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List photos",
                "tags": [
                    "photos"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Photo or batch",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createPhotosRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Photo"
                            },
                            "type": "array"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Add photos",
                "tags": [
                    "photos"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updatePhotoRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Photo"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update photo",
                "tags": [
                    "photos"
                ]
            }
        },
        "/api/admin/galleries/photos/reorder": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Ordered ids",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.reorderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    }
                },
                "summary": "Reorder photos",
                "tags": [
                    "photos"
                ]
            }
        },
        "/api/admin/galleries/reorder": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Ordered ids",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.reorderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    }
                },
                "summary": "Reorder galleries",
                "tags": [
                    "galleries"
                ]
            }
        },
        "/api/admin/leads": {
            "delete": {
                "parameters": [
                    {
                        "description": "Lead ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete lead",
                "tags": [
                    "leads"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Pipeline stage",
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    },
                    {
                        "description": "Matches nome, email or empresa",
                        "in": "query",
                        "name": "search",
                        "type": "string"
                    },
                    {
                        "description": "Created on or after",
                        "in": "query",
                        "name": "from",
                        "type": "string"
                    },
                    {
                        "description": "Created on or before",
                        "in": "query",
                        "name": "to",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Lead"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List leads",
                "tags": [
                    "leads"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Lead",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createLeadRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Lead"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Create lead",
                "tags": [
                    "leads"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateLeadRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Lead"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update lead",
                "tags": [
                    "leads"
                ]
            }
        },
        "/api/admin/leads/interactions": {
            "delete": {
                "parameters": [
                    {
                        "description": "Interaction ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete interaction",
                "tags": [
                    "leads"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Lead ID",
                        "in": "query",
                        "name": "lead_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.LeadInteraction"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List interactions",
                "tags": [
                    "leads"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Interaction",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createInteractionRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.LeadInteraction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Add interaction",
                "tags": [
                    "leads"
                ]
            }
        },
        "/api/admin/leads/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.LeadStats"
                        }
                    }
                },
                "summary": "Lead statistics",
                "tags": [
                    "leads"
                ]
            }
        },
        "/api/admin/partners": {
            "delete": {
                "parameters": [
                    {
                        "description": "Partner ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete partner",
                "tags": [
                    "partners"
                ]
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Partner"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List partners",
                "tags": [
                    "partners"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Partner",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createPartnerRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Partner"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Create partner",
                "tags": [
                    "partners"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updatePartnerRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Partner"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update partner",
                "tags": [
                    "partners"
                ]
            }
        },
        "/api/admin/partners/reorder": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Ordered ids",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.reorderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    }
                },
                "summary": "Reorder partners",
                "tags": [
                    "partners"
                ]
            }
        },
        "/api/admin/team": {
            "delete": {
                "parameters": [
                    {
                        "description": "Member ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete team member",
                "tags": [
                    "team"
                ]
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.TeamMember"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List team",
                "tags": [
                    "team"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Member",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createTeamMemberRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.TeamMember"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Create team member",
                "tags": [
                    "team"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateTeamMemberRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.TeamMember"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update team member",
                "tags": [
                    "team"
                ]
            }
        },
        "/api/admin/team/reorder": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Ordered ids",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.reorderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    }
                },
                "summary": "Reorder team",
                "tags": [
                    "team"
                ]
            }
        },
        "/api/admin/templates": {
            "delete": {
                "parameters": [
                    {
                        "description": "Template ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete template",
                "tags": [
                    "templates"
                ]
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.MessageTemplate"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List templates",
                "tags": [
                    "templates"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Template",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createTemplateRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.MessageTemplate"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Create template",
                "tags": [
                    "templates"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateTemplateRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.MessageTemplate"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update template",
                "tags": [
                    "templates"
                ]
            }
        },
        "/api/admin/templates/render": {
            "get": {
                "parameters": [
                    {
                        "description": "Template ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Lead ID",
                        "in": "query",
                        "name": "lead_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.RenderedMessage"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Render template",
                "tags": [
                    "templates"
                ]
            }
        },
        "/api/admin/upload": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "description": "Image or video",
                        "in": "formData",
                        "name": "file",
                        "required": true,
                        "type": "file"
                    },
                    {
                        "description": "Destination folder",
                        "in": "formData",
                        "name": "folder",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.MediaAsset"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Upload media",
                "tags": [
                    "upload"
                ]
            }
        },
        "/api/admin/users": {
            "delete": {
                "parameters": [
                    {
                        "description": "User ID",
                        "in": "query",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.successResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Delete user",
                "tags": [
                    "users"
                ]
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.User"
                            },
                            "type": "array"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "List users",
                "tags": [
                    "users"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Account",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createUserRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Create user",
                "tags": [
                    "users"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateUserRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Update user",
                "tags": [
                    "users"
                ]
            }
        },
        "/api/leads": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Contact form",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.captureLeadRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.captureLeadResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Capture lead",
                "tags": [
                    "public"
                ]
            }
        },
        "/api/public/galleries/{slug}": {
            "get": {
                "parameters": [
                    {
                        "description": "Gallery slug",
                        "in": "path",
                        "name": "slug",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.GalleryDetail"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Public gallery",
                "tags": [
                    "public"
                ]
            }
        },
        "/api/public/projects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Project"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "Public projects",
                "tags": [
                    "public"
                ]
            }
        },
        "/api/public/site": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PublicSite"
                        }
                    }
                },
                "summary": "Public site content",
                "tags": [
                    "public"
                ]
            }
        }
    },
    "definitions": {
        "domain.Category": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "slug": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.Dashboard": {
            "properties": {
                "equipe": {
                    "type": "integer"
                },
                "fotos": {
                    "type": "integer"
                },
                "galerias": {
                    "type": "integer"
                },
                "leads": {
                    "$ref": "#/definitions/domain.LeadStats"
                },
                "parceiros": {
                    "type": "integer"
                },
                "templates": {
                    "type": "integer"
                },
                "usuarios": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "domain.Gallery": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "capa_url": {
                    "type": "string"
                },
                "categoria_id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "principal": {
                    "type": "boolean"
                },
                "slug": {
                    "type": "string"
                },
                "titulo": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "video_url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.GalleryDetail": {
            "properties": {
                "fotos": {
                    "items": {
                        "$ref": "#/definitions/domain.Photo"
                    },
                    "type": "array"
                },
                "id": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "titulo": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.Lead": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "empresa": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "mensagem": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "orcamento": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "origem": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "tipo_projeto": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.LeadInteraction": {
            "properties": {
                "autor": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "lead_id": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.LeadStats": {
            "properties": {
                "em_aberto": {
                    "type": "integer"
                },
                "este_mes": {
                    "type": "integer"
                },
                "por_origem": {
                    "additionalProperties": {
                        "type": "integer"
                    },
                    "type": "object"
                },
                "por_status": {
                    "additionalProperties": {
                        "type": "integer"
                    },
                    "type": "object"
                },
                "taxa_conversao": {
                    "type": "number"
                },
                "total": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "domain.MediaAsset": {
            "properties": {
                "bytes": {
                    "type": "integer"
                },
                "format": {
                    "type": "string"
                },
                "height": {
                    "type": "integer"
                },
                "public_id": {
                    "type": "string"
                },
                "resource_type": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "width": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "domain.MessageTemplate": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "categoria": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "mensagem": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "titulo": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.Partner": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "logo_url": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "site_url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.Photo": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "galeria_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "legenda": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "public_id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.Project": {
            "properties": {
                "capa_url": {
                    "type": "string"
                },
                "categoria": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "slug": {
                    "type": "string"
                },
                "titulo": {
                    "type": "string"
                },
                "video_url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.PublicSite": {
            "properties": {
                "categorias": {
                    "items": {
                        "$ref": "#/definitions/domain.Category"
                    },
                    "type": "array"
                },
                "config": {
                    "additionalProperties": {
                        "type": "string"
                    },
                    "type": "object"
                },
                "galerias": {
                    "items": {
                        "$ref": "#/definitions/domain.Gallery"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "domain.SessionUser": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.TeamMember": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "bio": {
                    "type": "string"
                },
                "cargo": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "foto_url": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "instagram": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "domain.User": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "ultimo_acesso": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.captureLeadRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "empresa": {
                    "type": "string"
                },
                "mensagem": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "orcamento": {
                    "type": "string"
                },
                "origem": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "tipo_projeto": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.captureLeadResponse": {
            "properties": {
                "id": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "handler.createCategoryRequest": {
            "properties": {
                "nome": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.createGalleryRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "capa_url": {
                    "type": "string"
                },
                "categoria_id": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "principal": {
                    "type": "boolean"
                },
                "slug": {
                    "type": "string"
                },
                "titulo": {
                    "type": "string"
                },
                "video_url": {
                    "type": "string"
                }
            },
            "required": [
                "titulo"
            ],
            "type": "object"
        },
        "handler.createInteractionRequest": {
            "properties": {
                "descricao": {
                    "type": "string"
                },
                "lead_id": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.createLeadRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "empresa": {
                    "type": "string"
                },
                "mensagem": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "orcamento": {
                    "type": "string"
                },
                "origem": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "tipo_projeto": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.createPartnerRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "logo_url": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "site_url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.createPhotosRequest": {
            "properties": {
                "fotos": {
                    "items": {
                        "$ref": "#/definitions/handler.photoRequest"
                    },
                    "type": "array"
                },
                "galeria_id": {
                    "type": "string"
                },
                "legenda": {
                    "type": "string"
                },
                "public_id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.createTeamMemberRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "bio": {
                    "type": "string"
                },
                "cargo": {
                    "type": "string"
                },
                "foto_url": {
                    "type": "string"
                },
                "instagram": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.createTemplateRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "categoria": {
                    "type": "string"
                },
                "mensagem": {
                    "type": "string"
                },
                "titulo": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.createUserRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "senha": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.loginFailure": {
            "properties": {
                "error": {
                    "type": "string"
                },
                "remaining": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "handler.loginLimited": {
            "properties": {
                "error": {
                    "type": "string"
                },
                "remaining": {
                    "type": "integer"
                },
                "retryAfter": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "handler.loginRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "senha": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.loginResponse": {
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "usuario": {
                    "$ref": "#/definitions/domain.User"
                }
            },
            "type": "object"
        },
        "handler.meResponse": {
            "properties": {
                "usuario": {
                    "properties": {
                        "email": {
                            "type": "string"
                        },
                        "id": {
                            "type": "string"
                        },
                        "nome": {
                            "type": "string"
                        },
                        "role": {
                            "type": "string"
                        }
                    },
                    "type": "object"
                }
            },
            "type": "object"
        },
        "handler.photoRequest": {
            "properties": {
                "legenda": {
                    "type": "string"
                },
                "public_id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.reorderRequest": {
            "properties": {
                "ids": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handler.successResponse": {
            "properties": {
                "success": {
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "handler.updateCategoryRequest": {
            "properties": {
                "id": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "handler.updateGalleryRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "capa_url": {
                    "type": "string"
                },
                "categoria_id": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "principal": {
                    "type": "boolean"
                },
                "slug": {
                    "type": "string"
                },
                "titulo": {
                    "type": "string"
                },
                "video_url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.updateLeadRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "empresa": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "mensagem": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "orcamento": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "origem": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "tipo_projeto": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.updatePartnerRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "logo_url": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "site_url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.updatePhotoRequest": {
            "properties": {
                "id": {
                    "type": "string"
                },
                "legenda": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "handler.updateTeamMemberRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "bio": {
                    "type": "string"
                },
                "cargo": {
                    "type": "string"
                },
                "foto_url": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "instagram": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "handler.updateTemplateRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "categoria": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "mensagem": {
                    "type": "string"
                },
                "ordem": {
                    "type": "integer"
                },
                "titulo": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.updateUserRequest": {
            "properties": {
                "ativo": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "senha": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "ports.RenderedMessage": {
            "properties": {
                "link": {
                    "type": "string"
                },
                "mensagem": {
                    "type": "string"
                }
            },
            "type": "object"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Site Admin API",
	Description:      "Public site content, lead capture and the admin CMS.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
