package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/ieee-swc/ClubBack/handlers"
	"github.com/ieee-swc/ClubBack/handlers/auth"
	middlewares "github.com/ieee-swc/ClubBack/middleware"
	"github.com/ieee-swc/ClubBack/supabase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Community *handlers.CommunityHandler
	Auth      *auth.Handler
	Users     *handlers.UserHandler
	Content   *handlers.ContentHandler
	SB        *supabase.Client
}

func SetupRoutes(app *fiber.App, deps Deps) {
	router := app.Group("/api")
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API healthy!")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	community := router.Group("/community")
	CommunityRoutes(community, deps.Community)
	router.Post("/community/activity", handlers.RecordActivity)

	authGroup := router.Group("/auth")
	AuthRoutes(authGroup, deps.Auth)

	router.Get("/me", middlewares.RequireAuth(), deps.Users.Me)
	router.Patch("/me", middlewares.RequireAuth(), deps.Users.UpdateMe)

	users := router.Group("/users", middlewares.RequireAuth(), middlewares.RequireAdmin(deps.SB))
	UserRoutes(users, deps.Users)

	ContentRoutes(router, deps)

	debug := router.Group("/debug")
	DebugRoutes(debug)
}

func CommunityRoutes(router fiber.Router, h *handlers.CommunityHandler) {
	router.Get("/server", h.GetServerInfo)     // GET /community/server
	router.Get("/members", h.GetOnlineMembers) // GET /community/members
	router.Get("/events", h.GetUpcomingEvents) // GET /community/events
	router.Get("/activity", h.GetRecentActivity)
	router.Get("/invite", h.GetInvite)
}

func AuthRoutes(router fiber.Router, h *auth.Handler) {
	router.Post("/register", h.Register)
	router.Post("/login", h.Login)
	router.Post("/logout", middlewares.RequireAuth(), h.Logout)
}

func UserRoutes(router fiber.Router, h *handlers.UserHandler) {
	router.Get("/", h.ListUsers)            // GET   /users
	router.Patch("/:id/role", h.UpdateRole) // PATCH /users/:id/role
}

func DebugRoutes(router fiber.Router) {
	router.Post("/seed/activity", handlers.SeedActivity)
}

func ContentRoutes(router fiber.Router, deps Deps) {
	router.Get("/projects", deps.Content.ListProjects)
	router.Post("/projects", middlewares.RequireAuth(), middlewares.RequireAdmin(deps.SB), deps.Content.CreateProject)
	router.Get("/resources", deps.Content.ListResources)
	router.Post("/resources", middlewares.RequireAuth(), middlewares.RequireAdmin(deps.SB), deps.Content.CreateResource)
}
