package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_KeepsOriginal(t *testing.T) {
	errOrig := errors.New("idp down")

	err := NewServer(errOrig)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.ErrorIs(t, err, errOrig)
	assert.Same(t, errOrig, gerr.Unwrap())
	assert.Equal(t, "idp down", err.Error())
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
}

func TestNewBusiness(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := NewBusiness("nope", tt.code)

			var gerr *Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tt.want, gerr.StatusCode())
			assert.Equal(t, TypeBusiness, gerr.Type())
			assert.Equal(t, "nope", err.Error())
			assert.Nil(t, gerr.Unwrap())
			assert.Contains(t, gerr.String(), "ERROR_TYPE_BUSINESS")
		})
	}
}
