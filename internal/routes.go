package internal

import (
	"net/http"

	"aurad/internal/controllers"
	"aurad/internal/providers"
	"aurad/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/draw", http.HandlerFunc(apiController.Draw))
	routers.Post("/reroll", http.HandlerFunc(apiController.Reroll))
	routers.Post("/feed", http.HandlerFunc(apiController.Feed))
	routers.Post("/mascot", http.HandlerFunc(apiController.SwitchMascot))
	routers.Get("/state", http.HandlerFunc(apiController.GetState))
	routers.Get("/quote", http.HandlerFunc(apiController.GetQuote))
	routers.Get("/partner", http.HandlerFunc(apiController.GetPartner))
	return routers
}
