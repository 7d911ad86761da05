package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MessageComply/ComplyGate/pkg/config"
	"github.com/MessageComply/ComplyGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// OCRClient asks the external OCR service to read a screenshot. The core
// never interprets images itself; it only forwards them and consumes the
// returned plain text.
type OCRClient interface {
	ExtractText(ctx context.Context, imageBase64 string) (string, error)
}

type ocrRequest struct {
	Image string `json:"image"`
}

type ocrResponse struct {
	Text string `json:"text"`
}

type httpOCRClient struct {
	client *fasthttp.Client
	cfg    config.ExtractionConfig
	logger *logrus.Logger
}

func NewOCRClient(cfg config.ExtractionConfig, logger *logrus.Logger) OCRClient {
	return &httpOCRClient{
		client: &fasthttp.Client{
			ReadTimeout:  time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
			WriteTimeout: time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		},
		cfg:    cfg,
		logger: logger,
	}
}

func (c *httpOCRClient) ExtractText(ctx context.Context, imageBase64 string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.cfg.OCRServiceURL == "" {
		return "", fmt.Errorf("%w: no service url configured", ErrOCRUnavailable)
	}

	payload, err := json.Marshal(ocrRequest{Image: imageBase64})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOCRUnavailable, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.cfg.OCRServiceURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	timeout := time.Duration(c.cfg.FetchTimeoutSeconds) * time.Second
	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		prometheus.ExtractionFailures.WithLabelValues("ocr").Inc()
		c.logger.WithError(err).Warn("ocr service request failed")
		return "", fmt.Errorf("%w: %v", ErrOCRUnavailable, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		prometheus.ExtractionFailures.WithLabelValues("ocr").Inc()
		return "", fmt.Errorf("%w: unexpected status %d", ErrOCRUnavailable, resp.StatusCode())
	}

	var decoded ocrResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOCRUnavailable, err)
	}

	if strings.TrimSpace(decoded.Text) == "" {
		return "", ErrNoTextExtracted
	}
	return decoded.Text, nil
}
