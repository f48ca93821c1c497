package server

import (
	"tastemap/internal/models"
	"tastemap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me: own profile plus authored posts.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)
	profile, err := s.userService.GetProfile(c.Context(), userID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":  profile.User,
		"posts": profile.Posts,
	})
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Name       *string `json:"name"`
		AvatarURL  *string `json:"avatarUrl"`
		LocationID *uint   `json:"locationId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), currentUserID(c), service.UpdateProfileInput{
		Name:       req.Name,
		AvatarURL:  req.AvatarURL,
		LocationID: req.LocationID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"user":    user,
	})
}

// SetMyLocation handles PUT /api/users/location
func (s *Server) SetMyLocation(c *fiber.Ctx) error {
	var req struct {
		LocationID uint `json:"locationId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.SetLocation(c.Context(), currentUserID(c), req.LocationID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Location set",
		"user":    user,
	})
}

// GetUserProfile handles GET /api/users/:id: sanitized public profile plus
// the user's posts.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	profile, err := s.userService.GetProfile(c.Context(), id, s.optionalUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":  profile.User.Public(),
		"posts": profile.Posts,
	})
}
