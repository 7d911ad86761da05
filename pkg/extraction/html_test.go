package extraction

import (
	"testing"

	"github.com/MessageComply/ComplyGate/pkg/textmatch"
	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	page := []byte(`<html>
<head><title>Privacy</title><style>body { color: red; }</style></head>
<body>
<script>console.log("tracking");</script>
<h1>Privacy Policy</h1>
<p>Message and data rates may apply.</p>
<p>Reply <b>STOP</b> to opt out.</p>
<noscript>enable javascript</noscript>
</body></html>`)

	text := textmatch.Normalize(HTMLToText(page))

	assert.Contains(t, text, "privacy policy")
	assert.Contains(t, text, "message and data rates may apply")
	assert.Contains(t, text, "reply stop to opt out")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "enable javascript")
	assert.NotContains(t, text, "<p>")
}

func TestHTMLToTextEmpty(t *testing.T) {
	assert.Equal(t, "", HTMLToText(nil))
}
