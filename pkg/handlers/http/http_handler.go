package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Evaluation
	EvaluateDocumentHandler   Handler
	EvaluateSubmissionHandler Handler

	// Rule sets
	ListRuleSetsHandler Handler

	// Version
	GetVersionHandler Handler
}
