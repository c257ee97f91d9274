package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mathquest/mathquest-api/internal/dto"
	"github.com/mathquest/mathquest-api/internal/service"
	"github.com/mathquest/mathquest-api/internal/utils"
)

// ProblemHandler manages the problem generation endpoint.
type ProblemHandler struct {
	service   service.ProblemService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewProblemHandler builds a problem handler instance.
func NewProblemHandler(service service.ProblemService, validator *validator.Validate, logger zerolog.Logger) *ProblemHandler {
	return &ProblemHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "problem_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *ProblemHandler) Register(router fiber.Router) {
	router.Post("", h.create)
}

func (h *ProblemHandler) create(c *fiber.Ctx) error {
	var payload dto.ProblemCreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	problem, err := h.service.Generate(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, problem)
}

func (h *ProblemHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrInvalidDifficulty):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid difficulty")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrGeneration):
		return utils.SendError(c, fiber.StatusBadGateway, "problem generation failed")
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
