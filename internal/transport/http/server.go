package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sandevgo/brandgen/internal/config"
	"github.com/sandevgo/brandgen/pkg/log"
)

// Server exposes the creation studio over HTTP.
type Server struct {
	echo *echo.Echo
	cfg  *config.HTTPConfig
}

func NewServer(ctx context.Context, cfg *config.HTTPConfig, handler *Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	// Propagate the process logger into every request context
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(log.FromCtx(ctx).WithContext(req.Context())))
			return next(c)
		}
	})

	handler.RegisterRoutes(e)

	return &Server{
		echo: e,
		cfg:  cfg,
	}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http server")
	if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
