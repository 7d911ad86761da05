package http

import (
	"github.com/MessageComply/ComplyGate/pkg/app/evaluation"
	"github.com/MessageComply/ComplyGate/pkg/app/report"
	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/MessageComply/ComplyGate/pkg/infra/prometheus"
	"github.com/MessageComply/ComplyGate/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type evaluateDocumentHandler struct {
	logger    *logrus.Logger
	evaluator evaluation.DocumentEvaluator
	composer  report.Composer
}

func NewEvaluateDocumentHandler(
	logger *logrus.Logger,
	evaluator evaluation.DocumentEvaluator,
	composer report.Composer,
) Handler {
	return &evaluateDocumentHandler{
		logger:    logger,
		evaluator: evaluator,
		composer:  composer,
	}
}

// Handle checks a single document against its rule set and returns the
// composed report.
func (h *evaluateDocumentHandler) Handle(c *fiber.Ctx) error {
	var req types.EvaluateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	documentType, err := compliance.ParseDocumentType(req.DocumentType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	verdict, err := h.evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: documentType,
		RawText:      req.RawText,
	})
	if err != nil {
		h.logger.WithError(err).Error("document evaluation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "evaluation failed"})
	}

	prometheus.EvaluationTotal.WithLabelValues(string(verdict.DocumentType), string(verdict.Overall)).Inc()

	return c.Status(fiber.StatusOK).JSON(h.composer.Compose(verdict))
}
