package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	p := s.portfolioHandler

	s.E.GET("/", p.Home)
	s.E.GET("/health", p.Health)
	s.E.GET("/portfolio", p.Fragment)

	s.E.GET("/modal", p.CurrentModal)
	s.E.GET("/modal/close", p.CloseModal)
	s.E.GET("/modal/:name", p.OpenModal)

	s.E.POST("/contact", s.contactHandler.Submit, middleware.RateLimiter())
	s.E.GET("/whatsapp", s.contactHandler.WhatsApp)

	s.E.GET("/ws/live", echo.WrapHandler(s.liveHandler))

	s.E.POST("/admin/login", s.adminHandler.Login)
	s.E.POST("/admin/logout", s.adminHandler.Logout)

	admin := s.E.Group("/admin", middleware.RequireAdmin())
	admin.POST("/publish", s.adminHandler.Publish)
	admin.GET("/export", p.Export)

	admin.POST("/blocks", p.AddBlock)
	admin.POST("/blocks/:id/move", p.MoveBlock)
	admin.POST("/blocks/:id/resize", p.ResizeBlock)
	admin.POST("/blocks/:id/fields", p.UpdateBlockFields)
	admin.DELETE("/blocks/:id", p.DeleteBlock)

	admin.POST("/profile", p.UpdateProfile)

	admin.DELETE("/visitors/:id", p.DeleteVisitor)
	admin.DELETE("/visitors", p.ClearVisitors)
}
