package http

import (
	"context"
	"errors"

	"github.com/MessageComply/ComplyGate/pkg/app/evaluation"
	"github.com/MessageComply/ComplyGate/pkg/app/report"
	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/MessageComply/ComplyGate/pkg/extraction"
	"github.com/MessageComply/ComplyGate/pkg/infra/prometheus"
	"github.com/MessageComply/ComplyGate/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type evaluateSubmissionHandler struct {
	logger       *logrus.Logger
	evaluator    evaluation.DocumentEvaluator
	composer     report.Composer
	urlExtractor extraction.URLExtractor
	ocrClient    extraction.OCRClient
}

func NewEvaluateSubmissionHandler(
	logger *logrus.Logger,
	evaluator evaluation.DocumentEvaluator,
	composer report.Composer,
	urlExtractor extraction.URLExtractor,
	ocrClient extraction.OCRClient,
) Handler {
	return &evaluateSubmissionHandler{
		logger:       logger,
		evaluator:    evaluator,
		composer:     composer,
		urlExtractor: urlExtractor,
		ocrClient:    ocrClient,
	}
}

// Handle runs the opt-in flow and the privacy policy side by side and
// returns the combined submission report. A failure to resolve one document
// never blocks the other; it surfaces as an analysis error on that document
// only.
func (h *evaluateSubmissionHandler) Handle(c *fiber.Ctx) error {
	var req types.EvaluateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	var optIn, privacy compliance.Report

	group, ctx := errgroup.WithContext(c.UserContext())
	group.Go(func() error {
		optIn = h.evaluateDocument(compliance.OptIn, h.resolveOptIn(ctx, req))
		return nil
	})
	group.Go(func() error {
		privacy = h.evaluateDocument(compliance.PrivacyPolicy, h.resolvePrivacyPolicy(ctx, req))
		return nil
	})
	_ = group.Wait()

	return c.Status(fiber.StatusOK).JSON(h.composer.Combine(optIn, privacy))
}

type resolvedDocument struct {
	text string
	err  error
}

func (h *evaluateSubmissionHandler) resolveOptIn(ctx context.Context, req types.EvaluateSubmissionRequest) resolvedDocument {
	if req.OptInText != "" {
		return resolvedDocument{text: req.OptInText}
	}
	if req.OptInImageBase64 == "" {
		return resolvedDocument{}
	}
	text, err := h.ocrClient.ExtractText(ctx, req.OptInImageBase64)
	return resolvedDocument{text: text, err: err}
}

func (h *evaluateSubmissionHandler) resolvePrivacyPolicy(ctx context.Context, req types.EvaluateSubmissionRequest) resolvedDocument {
	if req.PrivacyPolicyText != "" {
		return resolvedDocument{text: req.PrivacyPolicyText}
	}
	if req.PrivacyPolicyURL == "" {
		return resolvedDocument{}
	}
	text, err := h.urlExtractor.Extract(ctx, req.PrivacyPolicyURL)
	return resolvedDocument{text: text, err: err}
}

func (h *evaluateSubmissionHandler) evaluateDocument(
	documentType compliance.DocumentType,
	resolved resolvedDocument,
) compliance.Report {
	if resolved.err != nil {
		// a screenshot with no readable text means the document was
		// effectively not submitted; everything else is an analysis error
		if !errors.Is(resolved.err, extraction.ErrNoTextExtracted) {
			h.logger.WithError(resolved.err).WithField("document_type", documentType).
				Warn("could not resolve document text")
			return compliance.Report{
				DocumentType:  documentType,
				AnalysisError: "We could not retrieve this document. Please paste its text directly and resubmit.",
			}
		}
		resolved.text = ""
	}

	verdict, err := h.evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: documentType,
		RawText:      resolved.text,
	})
	if err != nil {
		h.logger.WithError(err).WithField("document_type", documentType).Error("document evaluation failed")
		return compliance.Report{
			DocumentType:  documentType,
			AnalysisError: "Evaluation failed for this document.",
		}
	}

	prometheus.EvaluationTotal.WithLabelValues(string(verdict.DocumentType), string(verdict.Overall)).Inc()
	return h.composer.Compose(verdict)
}
