package server

import (
	"tastemap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReport handles POST /api/reports
func (s *Server) CreateReport(c *fiber.Ctx) error {
	var req struct {
		PostID uint   `json:"postId"`
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	report, err := s.reportService.CreateReport(c.Context(), currentUserID(c), req.PostID, req.Reason)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Report submitted",
		"report":  report,
	})
}

// GetReports handles GET /api/reports (admin). ?unread=true restricts the
// list to unseen reports; the unread counter uses the same predicate.
func (s *Server) GetReports(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread") == "true"
	list, err := s.reportService.ListReports(c.Context(), unreadOnly)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"reports":     list.Reports,
		"unreadCount": list.UnreadCount,
	})
}

// MarkReportSeen handles PATCH /api/reports/:id/mark-seen (admin)
func (s *Server) MarkReportSeen(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	report, err := s.reportService.MarkSeen(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Report marked as seen",
		"report":  report,
	})
}

// ResolveReport handles PUT /api/reports/:id/resolve (admin)
func (s *Server) ResolveReport(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	report, err := s.reportService.Resolve(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Report resolved",
		"report":  report,
	})
}
