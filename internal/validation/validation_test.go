package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deeplydee/photocards/internal/apperror"
)

type sample struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"omitempty,min=2,max=30"`
	Avatar string `json:"avatar" validate:"omitempty,weburl"`
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	v := New()
	assert.NoError(t, v.Validate(sample{Email: "a@x.com"}))
	assert.NoError(t, v.Validate(sample{
		Email:  "a@x.com",
		Name:   "Jacques",
		Avatar: "https://www.example.com/photo.png?size=2#top",
	}))
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(sample{Email: "not-an-email", Name: "x"})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, []apperror.Violation{
		{Field: "email", Rule: "email"},
		{Field: "name", Rule: "min"},
	}, appErr.Violations)
}

func TestWebURLRule(t *testing.T) {
	t.Parallel()

	v := New()
	valid := []string{
		"http://example.com",
		"https://example.com",
		"https://www.example.com/path/to/photo.jpg",
		"https://example.com/a?b=c&d=e#frag",
	}
	for _, u := range valid {
		assert.NoError(t, v.Validate(sample{Email: "a@x.com", Avatar: u}), u)
	}

	invalid := []string{
		"ftp://example.com",
		"example.com",
		"https://exa mple.com",
		"//example.com",
	}
	for _, u := range invalid {
		assert.Error(t, v.Validate(sample{Email: "a@x.com", Avatar: u}), u)
	}
}
