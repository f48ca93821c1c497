package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetLocations handles GET /api/locations: all locations sorted by name.
func (s *Server) GetLocations(c *fiber.Ctx) error {
	locations, err := s.userService.ListLocations(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(locations)
}
