package errs

import (
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHTTPStatusErrorThroughWrap(t *testing.T) {
	cause := errors.New("boom")
	err := pkgerrors.WithMessage(NewHTTPStatusError(http.StatusConflict, "event already cancelled", cause), "cancel event")

	httpErr, ok := IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, "(status 409) event already cancelled: boom", httpErr.Error())
	assert.ErrorIs(t, httpErr, cause)
}

func TestIsHTTPStatusErrorPlain(t *testing.T) {
	_, ok := IsHTTPStatusError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = IsHTTPStatusError(nil)
	assert.False(t, ok)
	assert.Equal(t, "(status 401) unauthorized", NewHTTPStatusError(http.StatusUnauthorized, "unauthorized", nil).Error())
}
