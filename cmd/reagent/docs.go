package main

// @title Reagent Service API
// @version 1.0
// @description Laboratory reagent inventory service: browse, search and filter reagents, create and edit records, and seed new records from label photos via the recognition service.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/labflow/reagent-inventory
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/labflow/reagent-inventory/blob/main/LICENSE

// @host localhost:8082
// @BasePath /

// @tag.name Reagents
// @tag.description Reagent inventory endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
