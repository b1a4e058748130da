package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/family", handler.CreateFamily)
	auth.Post("/join", handler.JoinFamily)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.GetLogs)
	logs.Post("", handler.AppendLog)
	logs.Delete("/:id", handler.DeleteLog)

	inventory := api.Group("/inventory", handler.AuthRequired)
	inventory.Get("", handler.GetInventory)
	inventory.Post("", handler.CheckInInventory)
	inventory.Delete("/:id", handler.CheckOutInventory)

	timer := api.Group("/timer", handler.AuthRequired)
	timer.Get("", handler.GetTimer)
	timer.Post("/toggle", handler.ToggleTimer)
	timer.Post("/start-time", handler.EditTimerStart)
	timer.Post("/reset", handler.ResetTimer)
	timer.Post("/save", handler.SaveTimer)

	maintenance := api.Group("/maintenance", handler.AuthRequired)
	maintenance.Post("/import", handler.ImportLegacyLogs)
	maintenance.Post("/dedup", handler.RemoveDuplicates)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/csv", handler.ExportCSV)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)

	preferences := api.Group("/preferences", handler.AuthRequired)
	preferences.Get("", handler.GetPreferences)
	preferences.Post("", handler.SetPreference)
}
