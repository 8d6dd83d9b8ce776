package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithAuthorization(header string) *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/", nil)
	if header != "" {
		ctx.Request.Header.Set("Authorization", header)
	}
	return ctx
}

func TestReadBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"Bearer", "Bearer abc.def", "abc.def", nil},
		{"Lowercase scheme", "bearer abc", "abc", nil},
		{"Missing header", "", "", ErrNoAuthorization},
		{"No token", "Bearer ", "", ErrMalformedAuthorization},
		{"No scheme", "abc", "", ErrMalformedAuthorization},
		{"Refresh scheme", "Refresh abc", "", ErrWrongTokenScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadBearerToken(contextWithAuthorization(tt.header))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadRefreshToken(t *testing.T) {
	got, err := ReadRefreshToken(contextWithAuthorization("Refresh r1"))
	assert.NoError(t, err)
	assert.Equal(t, "r1", got)

	_, err = ReadRefreshToken(contextWithAuthorization("Bearer r1"))
	assert.ErrorIs(t, err, ErrWrongTokenScheme)
}
