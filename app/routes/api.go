package routes

import (
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/controllers"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/middlewares"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/metrics"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/router"
)

// RegisterAPI mounts the JSON surface and the operational endpoints.
func RegisterAPI(r *router.Router, api *controllers.APIController) {
	r.Get("/metrics", "metrics", metrics.Handler())

	group := r.Group("/api")
	group.Post("/login", "api.login", api.Login)

	protected := group.Group("", middlewares.RequireToken)
	protected.Get("/listings", "api.listings", api.Listings)
	protected.Post("/graphql", "api.graphql", api.GraphQL)
}
