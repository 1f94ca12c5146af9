package webdocx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webdocx/webdocx"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := webdocx.Errorf(webdocx.ESCRAPE, "failed to scrape %q: HTTP 503", "https://example.com")

	assert.Equal(t, webdocx.ESCRAPE, webdocx.ErrorCode(err))
	assert.Equal(t, "failed to scrape \"https://example.com\": HTTP 503", webdocx.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webdocx.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, webdocx.EINTERNAL, webdocx.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webdocx.ErrorMessage(nil))
}
