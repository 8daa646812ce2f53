package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/adhdhub/internal/content"
	"github.com/nfrund/adhdhub/internal/rendering"
	"github.com/stretchr/testify/assert"
)

func TestHomeHandler(t *testing.T) {
	e := echo.New()
	hh := NewHomeHandler(rendering.NewUniversalRenderer(), "ADHD Hub")
	e.GET("/", hh.HomeGet)
	e.GET("/about", hh.AboutGet)
	e.GET("/health", HealthGet)

	t.Run("home", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<title>Home - ADHD Hub</title>")
		assert.Contains(t, rec.Body.String(), `href="/adhd?tab=strengths"`)
	})

	t.Run("about", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "About ADHD Hub")
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})
}

func TestCustomValidator(t *testing.T) {
	type req struct {
		Tab string `validate:"required,tab"`
	}
	type optional struct {
		Tab string `validate:"omitempty,tab"`
	}
	v := NewValidator()

	for _, tab := range content.Tabs() {
		assert.NoError(t, v.Validate(&req{Tab: tab.String()}), tab)
	}
	assert.Error(t, v.Validate(&req{Tab: "diet"}))
	assert.Error(t, v.Validate(&req{Tab: "Strengths"}))
	assert.Error(t, v.Validate(&req{}))

	assert.NoError(t, v.Validate(&optional{}))
	assert.Error(t, v.Validate(&optional{Tab: "diet"}))
}
