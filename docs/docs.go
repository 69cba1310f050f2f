// Package docs publica el documento OpenAPI del servicio; lo sirve
// http-swagger en /swagger. Mantener en línea con las anotaciones de los handlers.
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
        "/cats": {
            "post": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Datos del gato; birth_date YYYY-MM-DD opcional",
                        "schema": {
                            "$ref": "#/definitions/cats.createCatRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/cats.catResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Crear gato",
                "description": "Alta de un gato reproductor del usuario autenticado. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "cats"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/cats.catResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Listar gatos",
                "tags": [
                    "cats"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/cats/{catID}": {
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "catID",
                        "in": "path",
                        "required": true,
                        "description": "ID del gato",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/cats.catResponse"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "cat not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Obtener gato",
                "tags": [
                    "cats"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "catID",
                        "in": "path",
                        "required": true,
                        "description": "ID del gato",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Campos a modificar",
                        "schema": {
                            "$ref": "#/definitions/cats.updateCatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/cats.catResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "cat not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Actualizar perfil del gato",
                "description": "Actualiza solo las claves enviadas. Claves desconocidas => 400. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "cats"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/kittens/{kittenID}": {
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "kittenID",
                        "in": "path",
                        "required": true,
                        "description": "ID del gatito",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/kittens.kittenResponse"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "kitten not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Obtener gatito",
                "tags": [
                    "kittens"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "kittenID",
                        "in": "path",
                        "required": true,
                        "description": "ID del gatito",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Claves snake_case a modificar",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/kittens.kittenResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / campo desconocido / valor inválido",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "kitten not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Actualizar gatito (parcial)",
                "description": "Actualiza solo las claves enviadas, sin tocar el resto del roster. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "kittens"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/kittens/{kittenID}/weights": {
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "kittenID",
                        "in": "path",
                        "required": true,
                        "description": "ID del gatito",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/kittens.weightResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "kitten not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Listar pesos del gatito",
                "description": "Log de pesos ordenado por fecha descendente. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "kitten-weights"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "kittenID",
                        "in": "path",
                        "required": true,
                        "description": "ID del gatito",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Fecha YYYY-MM-DD y peso",
                        "schema": {
                            "$ref": "#/definitions/kittens.weightRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/kittens.weightResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "invalid json / fecha inválida / peso inválido",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "kitten not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Agregar peso del gatito",
                "description": "Agrega la entrada y devuelve el log completo ordenado. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "kitten-weights"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/kittens/{kittenID}/weights/{entryID}": {
            "delete": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "kittenID",
                        "in": "path",
                        "required": true,
                        "description": "ID del gatito",
                        "type": "string"
                    },
                    {
                        "name": "entryID",
                        "in": "path",
                        "required": true,
                        "description": "ID de la entrada",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/kittens.weightResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "kitten not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Quitar peso del gatito",
                "description": "Si la entrada no existe devuelve el log sin cambios. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "kitten-weights"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters": {
            "post": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Datos del litter",
                        "schema": {
                            "$ref": "#/definitions/litters.createLitterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/litters.litterResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / phase inválida",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Crear litter",
                "description": "Crea un litter del usuario autenticado. phase vacío => planned. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "litters"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/litters.litterResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Listar litters",
                "description": "Lista los litters del usuario autenticado. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "litters"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}": {
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/litters.litterResponse"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Obtener litter",
                "description": "Devuelve el litter con sus grupos de campos activos y los warnings de consistencia. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "litters"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Claves snake_case a modificar (fechas YYYY-MM-DD o null)",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/litters.litterResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / campo desconocido / valor inválido",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Actualizar litter (parcial)",
                "description": "Actualiza solo las claves enviadas; null limpia el campo. mating_date_from también escribe mating_date. expected_date NO se recalcula. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "litters"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": ""
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Borrar litter",
                "description": "Borra el litter junto con su roster, notas y pesos. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "litters"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}/expected-date": {
            "post": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/litters.litterResponse"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "mating date not set",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Calcular fecha de parto",
                "description": "Escribe expected_date = mating_date_from + 65 días. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "litters"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}/kittens": {
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/kittens.kittenResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Listar roster",
                "description": "Gatitos del litter en el orden en que se guardaron. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "kittens"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "put": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Roster completo",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/kittens.kittenRequest"
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/kittens.rosterResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / id duplicado o ajeno / valor inválido",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Reemplazar roster completo",
                "description": "Guarda el roster COMPLETO. Entradas sin id se crean (name obligatorio); con id se reemplazan enteras; los ids omitidos se borran. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "kittens"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}/kittens/birth-weights": {
            "put": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Pares id / birth_weight",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/kittens.birthWeightRequest"
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/kittens.kittenResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "invalid json / gatito ajeno / peso inválido",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Cargar pesos al nacer",
                "description": "Cambia solo birth_weight (gramos) de los gatitos indicados; el resto del roster queda como está persistido. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "kittens"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}/mother-weights": {
            "post": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Fecha YYYY-MM-DD, peso y notas",
                        "schema": {
                            "$ref": "#/definitions/litters.addMotherWeightRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/litters.litterResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / fecha inválida / peso inválido",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Agregar peso de la madre",
                "description": "Agrega una entrada al log de pesos de la madre (orden descendente por fecha). Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "mother-weights"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}/mother-weights/{entryID}": {
            "delete": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    },
                    {
                        "name": "entryID",
                        "in": "path",
                        "required": true,
                        "description": "ID de la entrada",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/litters.litterResponse"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Quitar peso de la madre",
                "description": "Quita la entrada; si no existe el litter vuelve sin cambios. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "mother-weights"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}/pregnancy-notes": {
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/litters.noteResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Listar notas de preñez",
                "description": "Notas ordenadas por fecha descendente. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "pregnancy-notes"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Fecha YYYY-MM-DD y texto",
                        "schema": {
                            "$ref": "#/definitions/litters.addNoteRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/litters.noteResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "invalid json / fecha inválida / nota vacía",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Agregar nota de preñez",
                "description": "Agrega la nota y devuelve la colección completa ordenada. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "pregnancy-notes"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}/pregnancy-notes/{noteID}": {
            "delete": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    },
                    {
                        "name": "noteID",
                        "in": "path",
                        "required": true,
                        "description": "ID de la nota",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/litters.noteResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Quitar nota de preñez",
                "description": "Quita la nota; si no existe devuelve la colección sin cambios. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "pregnancy-notes"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/litters/{litterID}/weight-chart.pdf": {
            "get": {
                "parameters": [
                    {
                        "name": "X-Debug-User-ID",
                        "in": "header",
                        "required": false,
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "type": "string"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token en producción",
                        "type": "string"
                    },
                    {
                        "name": "litterID",
                        "in": "path",
                        "required": true,
                        "description": "ID del litter",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "litter not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "birth date not set",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Planilla de pesos (PDF)",
                "description": "PDF apaisado A4 con días 0-28 desde birth_date y cuatro tomas por gatito. Autenticación: 'X-Debug-User-ID' (dev) o 'Authorization: Bearer <token>' (prod).",
                "tags": [
                    "kittens"
                ],
                "produces": [
                    "application/pdf"
                ]
            }
        }
    },
    "definitions": {
        "cats.catResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "owner_user_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "sex": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female"
                    ]
                },
                "breed": {
                    "type": "string"
                },
                "ems_code": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "birth_date": {
                    "type": "string"
                },
                "registration_number": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "cats.createCatRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "sex": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female"
                    ]
                },
                "breed": {
                    "type": "string"
                },
                "ems_code": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "birth_date": {
                    "type": "string"
                },
                "registration_number": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "cats.updateCatRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "sex": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female"
                    ]
                },
                "breed": {
                    "type": "string"
                },
                "ems_code": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "registration_number": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "kittens.birthWeightRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "birth_weight": {
                    "type": "integer"
                }
            }
        },
        "kittens.kittenRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "gender": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female"
                    ]
                },
                "color": {
                    "type": "string"
                },
                "ems_code": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "available",
                        "reserved",
                        "sold",
                        "keeping"
                    ]
                },
                "reserved_by": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "birth_weight": {
                    "type": "integer"
                }
            }
        },
        "kittens.kittenResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "litter_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "gender": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female"
                    ]
                },
                "color": {
                    "type": "string"
                },
                "ems_code": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "available",
                        "reserved",
                        "sold",
                        "keeping"
                    ]
                },
                "reserved_by": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "birth_weight": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "kittens.rosterResponse": {
            "type": "object",
            "properties": {
                "kittens": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/kittens.kittenResponse"
                    }
                },
                "created": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "updated": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "deleted": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "kittens.weightRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                }
            }
        },
        "kittens.weightResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "kitten_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                }
            }
        },
        "litters.addMotherWeightRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "litters.addNoteRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            }
        },
        "litters.createLitterRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "phase": {
                    "type": "string",
                    "enum": [
                        "planned",
                        "pending",
                        "active",
                        "completed"
                    ]
                },
                "mother_id": {
                    "type": "string"
                },
                "father_id": {
                    "type": "string"
                },
                "external_father_name": {
                    "type": "string"
                },
                "external_father_pedigree_url": {
                    "type": "string"
                },
                "reasoning": {
                    "type": "string"
                },
                "inbreeding_coefficient": {
                    "type": "number"
                },
                "blood_type_notes": {
                    "type": "string"
                },
                "alternative_combinations": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "litters.litterResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "owner_user_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phase": {
                    "type": "string",
                    "enum": [
                        "planned",
                        "pending",
                        "active",
                        "completed"
                    ]
                },
                "mother_id": {
                    "type": "string"
                },
                "father_id": {
                    "type": "string"
                },
                "external_father_name": {
                    "type": "string"
                },
                "external_father_pedigree_url": {
                    "type": "string"
                },
                "mating_date": {
                    "type": "string"
                },
                "mating_date_from": {
                    "type": "string"
                },
                "mating_date_to": {
                    "type": "string"
                },
                "expected_date": {
                    "type": "string"
                },
                "birth_date": {
                    "type": "string"
                },
                "completion_date": {
                    "type": "string"
                },
                "kitten_count": {
                    "type": "integer"
                },
                "reasoning": {
                    "type": "string"
                },
                "inbreeding_coefficient": {
                    "type": "number"
                },
                "blood_type_notes": {
                    "type": "string"
                },
                "alternative_combinations": {
                    "type": "string"
                },
                "birth_notes": {
                    "type": "string"
                },
                "evaluation": {
                    "type": "string"
                },
                "buyers_info": {
                    "type": "string"
                },
                "nrr_registered": {
                    "type": "boolean"
                },
                "notes": {
                    "type": "string"
                },
                "pregnancy_notes": {
                    "type": "string"
                },
                "mother_weight_log": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/litters.motherWeightResponse"
                    }
                },
                "active_groups": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/litters.warningResponse"
                    }
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "litters.motherWeightResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "litters.noteResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "litter_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            }
        },
        "litters.warningResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo: datos que se inyectan en docTemplate.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cattery Breeding API",
	Description:      "Registro de camadas: ciclo de vida, logs fechados, roster de gatitos y planilla de pesos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
