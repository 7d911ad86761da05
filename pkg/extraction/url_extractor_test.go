package extraction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MessageComply/ComplyGate/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() URLExtractor {
	return NewURLExtractor(config.Default().Extraction, logrus.New())
}

func TestURLExtractor_Extract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>Message and data rates may apply.</p></body></html>"))
	}))
	defer server.Close()

	text, err := newTestExtractor().Extract(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Message and data rates may apply.")
}

func TestURLExtractor_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestExtractor().Extract(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestURLExtractor_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><script>only_code();</script></body></html>"))
	}))
	defer server.Close()

	_, err := newTestExtractor().Extract(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrNoTextExtracted)
}

func TestURLExtractor_BadScheme(t *testing.T) {
	_, err := newTestExtractor().Extract(context.Background(), "ftp://example.com/policy")
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestURLExtractor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExtractor().Extract(ctx, "https://example.com/policy")
	assert.ErrorIs(t, err, context.Canceled)
}
