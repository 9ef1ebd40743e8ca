package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"communityhub/internal/domain"
)

func TestTemplateRenderer_Welcome(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("welcome", &domain.WelcomeEmailData{Email: "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, subject)
	require.Contains(t, html, "a@x.com")
	require.Contains(t, text, "a@x.com")
}

func TestTemplateRenderer_Newsletter(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.NewsletterEmailData{
		Subject: "June Update",
		Body:    "We met, we talked.",
		Email:   "a@x.com",
	}
	subject, html, text, err := r.Render("newsletter", data)
	require.NoError(t, err)
	require.Equal(t, "June Update", subject)
	require.True(t, strings.Contains(html, "We met, we talked."))
	require.True(t, strings.Contains(text, "We met, we talked."))
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("nope", nil)
	require.Error(t, err)
}
