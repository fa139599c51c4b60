package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWriteHTML(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteHTML(zap.NewNop(), rec, http.StatusCreated, []byte("<p>ok</p>"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "<p>ok</p>", rec.Body.String())
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteText(nil, rec, http.StatusInternalServerError, "Internal Server Error: boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Internal Server Error: boom\n", rec.Body.String())
}
