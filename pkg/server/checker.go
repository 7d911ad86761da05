package server

import (
	"fmt"

	"github.com/MessageComply/ComplyGate/pkg/config"
	handlers "github.com/MessageComply/ComplyGate/pkg/handlers/http"
	"github.com/MessageComply/ComplyGate/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type (
	CheckerServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	CheckerServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewCheckerServer(di CheckerServerDI) *CheckerServer {
	return &CheckerServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *CheckerServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting compliance checker server")
	return s.Router.Listen(addr)
}

func (s *CheckerServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.RecoverMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.RequestIDMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")
	{
		v1.Post("/evaluations", s.handlerTransport.EvaluateDocumentHandler.Handle)
		v1.Post("/submissions", s.handlerTransport.EvaluateSubmissionHandler.Handle)
		v1.Get("/rulesets", s.handlerTransport.ListRuleSetsHandler.Handle)
		v1.Get("/version", s.handlerTransport.GetVersionHandler.Handle)
	}
}

func (s *CheckerServer) Shutdown() error {
	return s.Router.Shutdown()
}
