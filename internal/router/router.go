package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"            // import the Echo web framework to handle routing
	emw "github.com/labstack/echo/v4/middleware" // echo's built-in logger, recover and CORS middleware

	"github.com/tcprodojo/backend/internal/config"     // runtime configuration (origins, secret)
	"github.com/tcprodojo/backend/internal/handler"    // import the handlers that implement business logic
	"github.com/tcprodojo/backend/internal/middleware" // import middleware for bearer-token authentication
	"github.com/tcprodojo/backend/internal/model"      // entity types for the handler instantiations
	"github.com/tcprodojo/backend/internal/repository" // pointer constraint shared with the handlers
)

// Handlers collects every handler the server mounts.  All of them are
// constructed in main with their repositories injected; the router only
// wires paths.
type Handlers struct {
	Auth         *handler.Auth
	Events       *handler.Content[model.Event, *model.Event]
	Trainers     *handler.Content[model.Trainer, *model.Trainer]
	Testimonials *handler.Content[model.Testimonial, *model.Testimonial]
	Gallery      *handler.Content[model.GalleryItem, *model.GalleryItem]
	Coaches      *handler.Content[model.Coach, *model.Coach]
	Stories      *handler.Content[model.SuccessStory, *model.SuccessStory]
	Endorsements *handler.Content[model.Endorsement, *model.Endorsement]
	Bookings     *handler.Content[model.Booking, *model.Booking]
	Contacts     *handler.Content[model.ContactMessage, *model.ContactMessage]
	Status       *handler.Content[model.StatusCheck, *model.StatusCheck]
	Media        *handler.Media
}

// New builds the Echo instance: request logging, panic recovery, CORS,
// request validation and the full route table under the /api prefix.
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	e.Use(emw.Logger())
	e.Use(emw.Recover())
	e.Use(emw.CORSWithConfig(emw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.GET("/", handler.Root)

	// Public routes: no authorization gate.  Content listings reuse the same
	// handlers as the admin surface; the projection is identical.
	api.GET("/classes", handler.Classes)
	api.POST("/status", h.Status.Create)
	api.GET("/status", h.Status.List)
	api.POST("/bookings", h.Bookings.Create)
	api.GET("/bookings", h.Bookings.List)
	api.POST("/contact", h.Contacts.Create)
	api.GET("/contacts", h.Contacts.List)
	api.GET("/events", h.Events.List)
	api.GET("/trainers", h.Trainers.List)
	api.GET("/testimonials", h.Testimonials.List)
	api.GET("/gallery", h.Gallery.List)
	api.GET("/success-stories", h.Stories.List)
	api.GET("/endorsements", h.Endorsements.List)
	api.GET("/coaches", h.Coaches.List)

	// Login lives under /admin but outside the gate; everything else under
	// /admin requires a valid bearer token.
	api.POST("/admin/login", h.Auth.Login)

	admin := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret))
	admin.GET("/verify", h.Auth.Verify)

	crud(admin, "/events", h.Events)
	crud(admin, "/trainers", h.Trainers)
	crud(admin, "/testimonials", h.Testimonials)
	crud(admin, "/gallery", h.Gallery)
	crud(admin, "/coaches", h.Coaches)
	crud(admin, "/success-stories", h.Stories)
	crud(admin, "/endorsements", h.Endorsements)
	admin.GET("/bookings", h.Bookings.List)
	admin.GET("/contacts", h.Contacts.List)

	admin.POST("/upload", h.Media.Upload)
	admin.GET("/media", h.Media.List)
	admin.DELETE("/media/*", h.Media.Delete)

	return e
}

// crud mounts the four standard operations for one content entity.
func crud[E any, PT repository.Ptr[E]](g *echo.Group, path string, h *handler.Content[E, PT]) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
