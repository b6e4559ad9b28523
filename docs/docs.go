// Package docs holds the swagger document served under /swagger/.
// It mirrors the swag annotations on the handlers and is kept by hand.
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
        "/auth/checkUser": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the identity decoded from the bearer token",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Check authenticated user",
                "responses": {
                    "200": {
                        "description": "Authenticated identity",
                        "schema": {
                            "$ref": "#/definitions/handlers.CheckUserResponse"
                        }
                    },
                    "401": {
                        "description": "Access denied / invalid token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Authenticate user and return JWT token",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "User login",
                "parameters": [
                    {
                        "description": "Login Request",
                        "name": "loginRequest",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "JWT token returned",
                        "schema": {
                            "$ref": "#/definitions/handlers.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "User not found / incorrect password",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Creates a new user account with the USER role. Usernames are unique. Password is hashed before storing.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "User registration request",
                        "name": "registerRequest",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "User successfully registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Username already exists / invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pkmn": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Looks up by id first, then by case-insensitive exact name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pokemon"
                ],
                "summary": "Get a pokemon",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pokemon id",
                        "name": "id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pokemon name",
                        "name": "name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Pokemon",
                        "schema": {
                            "$ref": "#/definitions/models.Pokemon"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Pokemon not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Changes only the fields present in the body. Admin only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pokemon"
                ],
                "summary": "Update a pokemon",
                "parameters": [
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdatePokemonRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Pokemon updated",
                        "schema": {
                            "$ref": "#/definitions/handlers.PokemonResponse"
                        }
                    },
                    "400": {
                        "description": "Missing id / name already taken",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Access forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Pokemon not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes a pokemon from the catalog. Admin only.",
                "tags": [
                    "pokemon"
                ],
                "summary": "Delete a pokemon",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pokemon id",
                        "name": "id",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Pokemon deleted"
                    },
                    "400": {
                        "description": "Missing id",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Access forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Pokemon not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pkmn/create": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Adds a pokemon to the catalog. Names are unique. Admin only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pokemon"
                ],
                "summary": "Create a pokemon",
                "parameters": [
                    {
                        "description": "Pokemon",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreatePokemonRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Pokemon created",
                        "schema": {
                            "$ref": "#/definitions/handlers.PokemonResponse"
                        }
                    },
                    "400": {
                        "description": "Pokemon already exists / invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Access forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pkmn/region": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces the pokedex number of an existing region, otherwise appends it. Admin only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pokemon"
                ],
                "summary": "Add or update a region",
                "parameters": [
                    {
                        "description": "Region",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RegionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Region added or updated",
                        "schema": {
                            "$ref": "#/definitions/handlers.PokemonResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Access forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Pokemon not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Drops a regional entry from a pokemon. Admin only.",
                "tags": [
                    "pokemon"
                ],
                "summary": "Remove a region",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pokemon id",
                        "name": "pkmnID",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Region name",
                        "name": "regionName",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Region removed"
                    },
                    "400": {
                        "description": "Missing parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Access forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Pokemon or region not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pkmn/search": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Case-insensitive partial name match, optional type filter, paginated",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pokemon"
                ],
                "summary": "Search pokemons",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Part of the name",
                        "name": "partialName",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "First type",
                        "name": "typeOne",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Second type",
                        "name": "typeTwo",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "description": "Page size",
                        "name": "size",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Matching pokemons",
                        "schema": {
                            "$ref": "#/definitions/models.PokemonPage"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pkmn/types": {
            "get": {
                "description": "Returns the static catalog of elemental types",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pokemon"
                ],
                "summary": "List pokemon types",
                "responses": {
                    "200": {
                        "description": "Type catalog",
                        "schema": {
                            "$ref": "#/definitions/models.TypeCatalog"
                        }
                    }
                }
            }
        },
        "/trainer": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trainer"
                ],
                "summary": "Get my trainer",
                "responses": {
                    "200": {
                        "description": "Trainer",
                        "schema": {
                            "$ref": "#/definitions/models.Trainer"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No trainer for this user",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Changes the trainer name and avatar present in the body",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trainer"
                ],
                "summary": "Update my trainer",
                "parameters": [
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.TrainerPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Trainer updated",
                        "schema": {
                            "$ref": "#/definitions/handlers.TrainerResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No trainer for this user",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Opens the trainer profile of the authenticated user. One per user.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trainer"
                ],
                "summary": "Create a trainer",
                "parameters": [
                    {
                        "description": "Trainer",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateTrainerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Trainer created",
                        "schema": {
                            "$ref": "#/definitions/handlers.TrainerResponse"
                        }
                    },
                    "400": {
                        "description": "Trainer already exists / invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "trainer"
                ],
                "summary": "Delete my trainer",
                "responses": {
                    "204": {
                        "description": "Trainer deleted"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No trainer for this user",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/trainer/mark": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Adds the pokemon to the seen list, and to the caught list when isCaptured is set",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trainer"
                ],
                "summary": "Mark a pokemon",
                "parameters": [
                    {
                        "description": "Mark",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.MarkRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Pokemon marked",
                        "schema": {
                            "$ref": "#/definitions/handlers.TrainerResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Trainer or pokemon not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.CheckUserResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/models.Identity"
                }
            }
        },
        "handlers.CreatePokemonRequest": {
            "type": "object",
            "required": [
                "name",
                "types",
                "hp",
                "attack",
                "defense",
                "specialAttack",
                "specialDefense",
                "speed",
                "description",
                "image"
            ],
            "properties": {
                "name": {
                    "type": "string",
                    "maxLength": 100
                },
                "types": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "minLength": 1,
                        "maxLength": 32
                    }
                },
                "regions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handlers.RegionEntry"
                    }
                },
                "hp": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "attack": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "defense": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "specialAttack": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "specialDefense": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "speed": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                }
            }
        },
        "handlers.CreateTrainerRequest": {
            "type": "object",
            "required": [
                "trainerName"
            ],
            "properties": {
                "trainerName": {
                    "type": "string",
                    "maxLength": 100
                },
                "imgUrl": {
                    "type": "string"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": [
                "username",
                "password"
            ],
            "properties": {
                "username": {
                    "type": "string",
                    "maxLength": 50
                },
                "password": {
                    "type": "string",
                    "maxLength": 72
                }
            }
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                }
            }
        },
        "handlers.MarkRequest": {
            "type": "object",
            "required": [
                "pkmnID"
            ],
            "properties": {
                "pkmnID": {
                    "type": "string"
                },
                "isCaptured": {
                    "type": "boolean"
                }
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "handlers.PokemonResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "pokemon": {
                    "$ref": "#/definitions/models.Pokemon"
                }
            }
        },
        "handlers.RegionEntry": {
            "type": "object",
            "required": [
                "regionName",
                "regionPokedexNumber"
            ],
            "properties": {
                "regionName": {
                    "type": "string",
                    "maxLength": 64
                },
                "regionPokedexNumber": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                }
            }
        },
        "handlers.RegionRequest": {
            "type": "object",
            "required": [
                "pkmnID",
                "regionName",
                "regionPokedexNumber"
            ],
            "properties": {
                "pkmnID": {
                    "type": "string"
                },
                "regionName": {
                    "type": "string",
                    "maxLength": 64
                },
                "regionPokedexNumber": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                }
            }
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": [
                "username",
                "password"
            ],
            "properties": {
                "username": {
                    "type": "string",
                    "maxLength": 50
                },
                "password": {
                    "type": "string",
                    "maxLength": 72
                }
            }
        },
        "handlers.TrainerResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "trainer": {
                    "$ref": "#/definitions/models.Trainer"
                }
            }
        },
        "handlers.UpdatePokemonRequest": {
            "type": "object",
            "required": [
                "id"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "maxLength": 100,
                    "minLength": 1
                },
                "types": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "minLength": 1,
                        "maxLength": 32
                    }
                },
                "regions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handlers.RegionEntry"
                    }
                },
                "hp": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "attack": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "defense": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "specialAttack": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "specialDefense": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "speed": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "description": {
                    "type": "string",
                    "minLength": 1
                },
                "image": {
                    "type": "string",
                    "minLength": 1
                }
            }
        },
        "models.Identity": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "USER",
                        "ADMIN"
                    ]
                }
            }
        },
        "models.Pokemon": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "maxLength": 100
                },
                "types": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "minLength": 1,
                        "maxLength": 32
                    }
                },
                "regions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Region"
                    }
                },
                "hp": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "attack": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "defense": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "specialAttack": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "specialDefense": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "speed": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 2147483647
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                }
            }
        },
        "models.PokemonPage": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Pokemon"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "models.Region": {
            "type": "object",
            "properties": {
                "regionName": {
                    "type": "string"
                },
                "regionPokedexNumber": {
                    "type": "integer"
                }
            }
        },
        "models.Trainer": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "trainerName": {
                    "type": "string"
                },
                "imgUrl": {
                    "type": "string"
                },
                "creationDate": {
                    "type": "string"
                },
                "pkmnSeen": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "pkmnCatch": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.TrainerPatch": {
            "type": "object",
            "properties": {
                "trainerName": {
                    "type": "string",
                    "minLength": 1,
                    "maxLength": 100
                },
                "imgUrl": {
                    "type": "string"
                }
            }
        },
        "models.TypeCatalog": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "count": {
                    "type": "integer",
                    "default": 18
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "gw-pokedex API",
	Description:      "Pokedex REST API with trainers, JWT authentication and roles",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
