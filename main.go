package main

import (
	"cinema_planner/database"
	"cinema_planner/helper"
	"cinema_planner/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	redisOk := database.ConnectRedis()

	helper.InitSession(redisOk)

	helper.StartAutosaveScheduler()
	defer helper.StopAutosaveScheduler()
	helper.StartPruneScheduler()
	defer helper.StopPruneScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
