package api

import "github.com/gofiber/fiber/v2"

func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/processes", handler.AddProcess)
		v1.Get("/processes", handler.ListProcesses)
		v1.Get("/processes/:id", handler.GetProcess)
		v1.Delete("/processes", handler.ClearProcesses)

		v1.Post("/schedule", handler.Schedule)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
	}
	return app
}
