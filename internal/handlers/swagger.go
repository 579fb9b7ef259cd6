package handlers

// @title Game Generator API
// @version 1.0
// @description Generates single-file HTML5 browser games from a text prompt using Gemini
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name games
// @tag.description Game generation operations
