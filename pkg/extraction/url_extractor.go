package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MessageComply/ComplyGate/pkg/config"
	"github.com/MessageComply/ComplyGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/valyala/fasthttp"
)

// URLExtractor fetches a policy page and returns its visible text.
type URLExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

type httpURLExtractor struct {
	client  *fasthttp.Client
	breaker *gobreaker.CircuitBreaker
	cfg     config.ExtractionConfig
	logger  *logrus.Logger
}

func NewURLExtractor(cfg config.ExtractionConfig, logger *logrus.Logger) URLExtractor {
	client := &fasthttp.Client{
		ReadTimeout:              time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		WriteTimeout:             time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		MaxResponseBodySize:      cfg.MaxBodyBytes,
		NoDefaultUserAgentHeader: true,
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "url_extractor",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})

	return &httpURLExtractor{
		client:  client,
		breaker: breaker,
		cfg:     cfg,
		logger:  logger,
	}
}

func (e *httpURLExtractor) Extract(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("%w: unsupported url scheme", ErrFetchFailed)
	}

	body, err := e.breaker.Execute(func() (interface{}, error) {
		return e.fetch(url)
	})
	if err != nil {
		prometheus.ExtractionFailures.WithLabelValues("url").Inc()
		e.logger.WithError(err).WithField("url", url).Warn("policy url fetch failed")
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	raw, ok := body.([]byte)
	if !ok {
		return "", fmt.Errorf("%w: unexpected breaker payload", ErrFetchFailed)
	}

	text := HTMLToText(raw)
	if strings.TrimSpace(text) == "" {
		return "", ErrNoTextExtracted
	}
	return text, nil
}

func (e *httpURLExtractor) fetch(url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(e.cfg.UserAgent)

	timeout := time.Duration(e.cfg.FetchTimeoutSeconds) * time.Second
	if err := e.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, err
	}

	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d", status)
	}

	// resp is pooled, keep our own copy of the body
	return append([]byte(nil), resp.Body()...), nil
}
