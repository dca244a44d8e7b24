package router

import (
	"cinema_planner/handler"
	"cinema_planner/middleware"
	"cinema_planner/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", validate.RefreshToken(), handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)

	auditorium := v1.Group("/auditorium", logger.New())
	auditorium.Get("/", middleware.Protected(), handler.GetAuditoriums)
	auditorium.Get("/:auditoriumId", middleware.Protected(), validate.GetById("auditoriumId"), handler.GetAuditoriumById)
	auditorium.Post("/", middleware.Protected(), validate.CreateAuditorium(), handler.CreateAuditorium)
	auditorium.Put("/:auditoriumId", middleware.Protected(), validate.GetById("auditoriumId"), validate.UpdateAuditorium(), handler.UpdateAuditorium)
	auditorium.Delete("/:auditoriumId", middleware.Protected(), validate.GetById("auditoriumId"), handler.DeleteAuditorium)

	film := v1.Group("/film", logger.New())
	film.Get("/", middleware.Protected(), handler.GetFilms)
	film.Get("/:id", middleware.Protected(), validate.GetFilmById(), handler.GetFilmById)
	film.Post("/", middleware.Protected(), validate.CreateFilm(), handler.CreateFilm)
	film.Put("/:id", middleware.Protected(), validate.GetFilmById(), validate.UpdateFilm(), handler.UpdateFilm)
	film.Delete("/:id", middleware.Protected(), validate.GetFilmById(), handler.DeleteFilm)

	booking := v1.Group("/booking", logger.New())
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Get("/:id", middleware.Protected(), validate.GetBookingById(), handler.GetBookingById)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Put("/:id", middleware.Protected(), validate.GetBookingById(), validate.UpdateBooking(), handler.UpdateBooking)
	booking.Delete("/:id", middleware.Protected(), validate.GetBookingById(), handler.DeleteBooking)

	row := v1.Group("/row", logger.New())
	row.Get("/", middleware.Protected(), handler.GetRows)
	row.Post("/", middleware.Protected(), validate.AddRow(), handler.AddRow)
	row.Put("/:id", middleware.Protected(), validate.GetRowById(), validate.UpdateRow(), handler.UpdateRow)
	row.Delete("/:id", middleware.Protected(), validate.GetRowById(), handler.DeleteRow)

	schedule := v1.Group("/schedule", logger.New())
	schedule.Get("/", middleware.Protected(), handler.GetSchedule)
	schedule.Get("/issues", middleware.Protected(), handler.GetIssues)
	schedule.Get("/dates", middleware.Protected(), handler.GetStoredDates)
	schedule.Get("/window", middleware.Protected(), handler.GetOperatingWindow)
	schedule.Put("/window", middleware.Protected(), validate.SetOperatingWindow(), handler.SetOperatingWindow)
	schedule.Post("/switch-date", middleware.Protected(), validate.SwitchDate(), handler.SwitchDate)
	schedule.Post("/copy", middleware.Protected(), validate.CopySchedule(), handler.CopySchedule)
	schedule.Delete("/", middleware.Protected(), handler.ClearAllSchedules)
	schedule.Delete("/:date", middleware.Protected(), validate.GetByDate(), handler.ClearSchedule)

	schedule.Post("/set-start", middleware.Protected(), validate.SetStart(), handler.SetStart)
	schedule.Post("/set-auditorium", middleware.Protected(), validate.SetAuditorium(), handler.SetAuditorium)
	schedule.Post("/set-film", middleware.Protected(), validate.SetFilm(), handler.SetFilm)
	schedule.Post("/manual-show", middleware.Protected(), validate.AddManualShow(), handler.AddManualShow)
	schedule.Post("/undo", middleware.Protected(), handler.Undo)

	ws := v1.Group("/ws")
	ws.Get("/schedule", websocket.New(handler.WebSocketConnection))
}
