// Package docs содержит описание API для swagger UI.
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
            "get": {"tags": ["health"], "summary": "Проверка доступности БД", "responses": {"200": {"description": "OK"}, "503": {"description": "БД недоступна"}}}
        },
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Регистрация основателя", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AuthResponse"}}, "409": {"description": "Email уже занят"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Вход", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}}, "401": {"description": "Неверные данные"}}}
        },
        "/public/chat/questions": {
            "get": {"tags": ["public"], "summary": "Сценарий разговорного онбординга", "responses": {"200": {"description": "OK"}}}
        },
        "/public/options": {
            "get": {"tags": ["public"], "summary": "Справочники", "responses": {"200": {"description": "OK"}}}
        },
        "/public/results": {
            "post": {"tags": ["public"], "summary": "Подборка по ответам чат-бота", "responses": {"200": {"description": "OK"}}}
        },
        "/public/subscriptions": {
            "post": {"tags": ["public"], "summary": "Подписка на рассылку", "responses": {"201": {"description": "Created"}}}
        },
        "/opportunities": {
            "post": {"tags": ["opportunities"], "summary": "Создать возможность (внешний API)", "security": [{"ServiceKey": []}, {"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "401": {"description": "Нет ключа"}, "403": {"description": "Нет прав"}}}
        },
        "/profile": {
            "get": {"tags": ["profile"], "summary": "Мой профиль", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["profile"], "summary": "Обновить профиль", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/profile/avatar": {
            "post": {"tags": ["profile"], "summary": "Загрузить аватар", "consumes": ["multipart/form-data"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "413": {"description": "Слишком большой файл"}, "415": {"description": "Неподдерживаемый тип"}}}
        },
        "/dashboard": {
            "get": {"tags": ["profile"], "summary": "Дашборд основателя", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Профиль не заполнен"}}}
        },
        "/onboarding": {
            "get": {"tags": ["onboarding"], "summary": "Текущий шаг онбординга", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/needs": {
            "get": {"tags": ["needs"], "summary": "Мои потребности", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["needs"], "summary": "Добавить потребность", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/feed": {
            "get": {"tags": ["feed"], "summary": "Лента возможностей", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Профиль не заполнен"}}}
        },
        "/feed/sessions": {
            "post": {"tags": ["feed"], "summary": "Начать просмотр карточек", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/feed/sessions/{id}/pass": {
            "post": {"tags": ["feed"], "summary": "Пропустить карточку", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "409": {"description": "Курсор устарел или карточки закончились"}}}
        },
        "/feed/sessions/{id}/interest": {
            "post": {"tags": ["feed"], "summary": "Интересно", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "409": {"description": "Курсор устарел или карточки закончились"}}}
        },
        "/matches": {
            "get": {"tags": ["matches"], "summary": "Мои совпадения", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/feedback": {
            "get": {"tags": ["feedback"], "summary": "Страница отзывов", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["feedback"], "summary": "Оставить отзыв", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/feedback/matches": {
            "get": {"tags": ["feedback"], "summary": "Совпадения, доступные для отзыва", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/dashboard": {
            "get": {"tags": ["admin"], "summary": "Сводка для администратора", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Нет прав"}}}
        },
        "/admin/analytics": {
            "get": {"tags": ["admin"], "summary": "Аналитика платформы", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Нет прав"}}}
        },
        "/admin/export/{dataset}": {
            "get": {"tags": ["admin"], "summary": "Выгрузка в CSV", "produces": ["text/csv"], "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "dataset", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Неизвестный набор"}}}
        },
        "/admin/opportunities": {
            "get": {"tags": ["opportunities"], "summary": "Список возможностей", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["opportunities"], "summary": "Создать возможность", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        }
    },
    "definitions": {
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}, "expires_at": {"type": "string"}, "user": {"$ref": "#/definitions/dto.UserResponse"}}
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}, "onboarding_step": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"},
        "ServiceKey": {"type": "apiKey", "name": "X-Service-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CeloBuddy API",
	Description:      "Подбор грантов, инвесторов и талантов для основателей.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
