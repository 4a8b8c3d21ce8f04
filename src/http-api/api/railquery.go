package api

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (s *APIServer) PostRailQuery(c *fiber.Ctx) error {
	var req RailQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "body must be a JSON object with a query field",
		})
	}

	if strings.TrimSpace(req.Query) == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "query must not be empty",
		})
	}

	answer, err := s.Assistant.HandleRailQuery(c.Context(), req.Query)
	if err != nil {
		s.Logger.Errorw("rail query pipeline failed", "error", err)
		errStr := err.Error()
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Pipeline error",
			Message: "Failed to answer rail query",
			Stack:   &errStr,
		})
	}

	return c.JSON(answer)
}
