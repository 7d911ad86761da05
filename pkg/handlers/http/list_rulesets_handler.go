package http

import (
	"github.com/MessageComply/ComplyGate/pkg/rulesets"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listRuleSetsHandler struct {
	logger   *logrus.Logger
	registry *rulesets.Registry
}

func NewListRuleSetsHandler(logger *logrus.Logger, registry *rulesets.Registry) Handler {
	return &listRuleSetsHandler{
		logger:   logger,
		registry: registry,
	}
}

func (h *listRuleSetsHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"rule_sets": h.registry.All()})
}
