package server

import (
	"errors"

	"tastemap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Admin endpoints use the {ok: bool, ...} response shape the moderation
// dashboard consumes, distinct from the public API's {message: ...} shape.

// AdminGetReports handles GET /admin/reports
func (s *Server) AdminGetReports(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread") == "true"
	list, err := s.reportService.ListReports(c.Context(), unreadOnly)
	if err != nil {
		return s.respondAdminError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":          true,
		"unreadCount": list.UnreadCount,
		"reports":     list.Reports,
	})
}

// AdminMarkReportSeen handles PATCH /admin/reports/:id/mark-seen
func (s *Server) AdminMarkReportSeen(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	report, err := s.reportService.MarkSeen(c.Context(), id)
	if err != nil {
		return s.respondAdminError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":     true,
		"report": report,
	})
}

// AdminDeleteUser handles DELETE /admin/users/:id: removes the user and all
// their content, routing each authored post through the single-post cascade.
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.moderationService.DeleteUserCascade(c.Context(), id); err != nil {
		return s.respondAdminError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "User and all their content deleted",
	})
}

// AdminDeletePost handles DELETE /admin/posts/:id
func (s *Server) AdminDeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.moderationService.DeletePostCascade(c.Context(), id); err != nil {
		return s.respondAdminError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Post and its comments and reports deleted",
	})
}

// AdminHideComment handles PATCH /admin/posts/:postId/comments/:commentId/hide
func (s *Server) AdminHideComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}
	comment, err := s.moderationService.HideComment(c.Context(), postID, commentID)
	if err != nil {
		return s.respondAdminError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Comment hidden",
		"comment": comment,
	})
}

// AdminDeleteComment handles DELETE /admin/posts/:postId/comments/:commentId
func (s *Server) AdminDeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}
	if err := s.moderationService.DeleteComment(c.Context(), postID, commentID); err != nil {
		return s.respondAdminError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Comment deleted",
	})
}

// respondAdminError writes errors in the admin {ok:false} shape.
func (s *Server) respondAdminError(c *fiber.Ctx, err error) error {
	status := models.StatusForError(err)
	message := "Server error"
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"ok":      false,
		"message": message,
	})
}
