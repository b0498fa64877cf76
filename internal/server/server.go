package server

import (
	"context"
	"html/template"
	"io"

	"lobby-signup/internal/handler"
	"lobby-signup/web"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	recordHandler   *handler.RecordHandler
	pageHandler     *handler.PageHandler
}

type templateRenderer struct {
	templates *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func NewServer(checkoutHandler *handler.CheckoutHandler, recordHandler *handler.RecordHandler, pageHandler *handler.PageHandler) *Server {
	e := echo.New()

	e.Renderer = &templateRenderer{
		templates: template.Must(template.ParseFS(web.Templates, "templates/*.html")),
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		checkoutHandler: checkoutHandler,
		recordHandler:   recordHandler,
		pageHandler:     pageHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// -------- pages --------
	s.echo.GET("/", s.pageHandler.Form)
	s.echo.POST("/signup", s.pageHandler.Signup)
	s.echo.GET("/success", s.pageHandler.Success)
	s.echo.GET("/cancel", s.pageHandler.Cancel)
	s.echo.StaticFS("/static", echo.MustSubFS(web.Static, "static"))

	// -------- json api --------
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/create-checkout-session", s.checkoutHandler.CreateCheckoutSession)
	api.GET("/retrieve-checkout-session", s.checkoutHandler.RetrieveCheckoutSession)
	api.POST("/submitToAirtable", s.recordHandler.SubmitToAirtable)
	api.POST("/updatePaymentStatus", s.recordHandler.UpdatePaymentStatus)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
