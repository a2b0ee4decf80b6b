package modrinth_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	t.Run("with decoded body", func(t *testing.T) {
		t.Parallel()

		err := &modrinth.APIError{
			Status:      http.StatusNotFound,
			Kind:        "not_found",
			Description: "the requested route does not exist",
		}
		assert.Equal(t, "not_found: the requested route does not exist (status 404)", err.Error())
	})

	t.Run("without decoded body", func(t *testing.T) {
		t.Parallel()

		err := &modrinth.APIError{Status: http.StatusBadGateway}
		assert.Equal(t, "unexpected status 502", err.Error())
	})
}

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting project: %w", &modrinth.APIError{Status: http.StatusNotFound})
	unauthorized := fmt.Errorf("following project: %w", &modrinth.APIError{Status: http.StatusUnauthorized})
	badSlug := fmt.Errorf("%w: %q", modrinth.ErrInvalidSlugOrID, "bad/slug")
	badHash := fmt.Errorf("%w: wrong length", modrinth.ErrInvalidSHA1)

	assert.True(t, modrinth.IsNotFound(notFound))
	assert.False(t, modrinth.IsNotFound(unauthorized))
	assert.False(t, modrinth.IsNotFound(badSlug))

	assert.True(t, modrinth.IsUnauthorized(unauthorized))
	assert.False(t, modrinth.IsUnauthorized(notFound))

	assert.True(t, modrinth.IsInvalidInput(badSlug))
	assert.True(t, modrinth.IsInvalidInput(badHash))
	assert.False(t, modrinth.IsInvalidInput(notFound))
}
