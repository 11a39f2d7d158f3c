// Package docs holds the OpenAPI description of the ledger display API served at /swagger.
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
        "/display/transactions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Normalize an account's journal lines for display",
                "parameters": [
                    {
                        "description": "Account classification and journal lines",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TransactionViewRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionViewResponse"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to build transaction view", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/display/balances": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Normalize account balances and compute net worth",
                "parameters": [
                    {
                        "description": "Accounts with stored balances",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.BalanceSheetRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to build balance sheet", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/format": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Format an amount in a currency",
                "parameters": [
                    {
                        "description": "Amount and format options",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.FormatRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormatResponse"}},
                    "400": {"description": "Invalid input format", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/imports/preview": {
            "post": {
                "description": "Resolves each row's amount against the column mapping and flags in-batch duplicates",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["imports"],
                "summary": "Preview a CSV import",
                "parameters": [
                    {
                        "description": "Rows keyed by header and the column mapping",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ImportPreviewRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Invalid input format or invalid mapping", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to preview import", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "domain.JournalLine": {
            "type": "object",
            "properties": {
                "lineID": {"type": "string"},
                "journalID": {"type": "string"},
                "accountID": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "rawAmount": {"type": "number"}
            }
        },
        "domain.Account": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["user", "category", "system"]},
                "subtype": {"type": "string", "enum": ["asset", "liability"]},
                "currencyCode": {"type": "string"},
                "rawBalance": {"type": "number"}
            }
        },
        "domain.VisualIndicator": {
            "type": "object",
            "properties": {
                "cssClass": {"type": "string"},
                "colorClass": {"type": "string"},
                "ariaLabel": {"type": "string"}
            }
        },
        "dto.TransactionViewRequest": {
            "type": "object",
            "required": ["accountType", "accountSubtype"],
            "properties": {
                "accountType": {"type": "string", "enum": ["user", "category", "system"]},
                "accountSubtype": {"type": "string", "enum": ["asset", "liability"]},
                "currencyCode": {"type": "string"},
                "isCurrentAccount": {"type": "boolean"},
                "preset": {"type": "string", "enum": ["summary", "code"]},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/domain.JournalLine"}}
            }
        },
        "dto.TransactionViewResponse": {
            "type": "object",
            "properties": {
                "accountType": {"type": "string"},
                "accountSubtype": {"type": "string"},
                "currencyCode": {"type": "string"},
                "lines": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "number"},
                "formattedTotal": {"type": "string"},
                "totalIndicator": {"$ref": "#/definitions/domain.VisualIndicator"}
            }
        },
        "dto.BalanceSheetRequest": {
            "type": "object",
            "required": ["accounts"],
            "properties": {
                "currencyCode": {"type": "string"},
                "preset": {"type": "string", "enum": ["summary", "code"]},
                "accounts": {"type": "array", "items": {"$ref": "#/definitions/domain.Account"}}
            }
        },
        "dto.FormatRequest": {
            "type": "object",
            "required": ["amount", "currencyCode"],
            "properties": {
                "amount": {"type": "number"},
                "currencyCode": {"type": "string"},
                "preset": {"type": "string", "enum": ["summary", "code"]},
                "decimals": {"type": "integer", "minimum": 0, "maximum": 12},
                "grouping": {"type": "boolean"},
                "useCurrencyPrecision": {"type": "boolean"}
            }
        },
        "dto.FormatResponse": {
            "type": "object",
            "properties": {
                "formatted": {"type": "string"},
                "rounded": {"type": "string"},
                "symbol": {"type": "string"}
            }
        },
        "dto.ImportPreviewRequest": {
            "type": "object",
            "required": ["rows"],
            "properties": {
                "mapping": {
                    "type": "object",
                    "properties": {
                        "date": {"type": "string"},
                        "amount": {"type": "string"},
                        "credit": {"type": "string"},
                        "debit": {"type": "string"},
                        "description": {"type": "string"}
                    }
                },
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": {"type": "string"}}},
                "currencyCode": {"type": "string"},
                "preset": {"type": "string", "enum": ["summary", "code"]},
                "limit": {"type": "integer", "minimum": 1, "maximum": 1000},
                "nextToken": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledger Display API",
	Description:      "Normalizes stored ledger amounts and balances for display, formats currency amounts and previews CSV imports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
