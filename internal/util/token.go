package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	SchemeBearer  = "Bearer"
	SchemeRefresh = "Refresh"
)

var (
	ErrNoAuthorization        = errors.New("no authorization header specified")
	ErrMalformedAuthorization = errors.New("authorization header must be '<scheme> <token>'")
	ErrWrongTokenScheme       = errors.New("unexpected authorization scheme")
)

// ReadAuthorizationHeader splits the Authorization header into its scheme and
// token. The scheme is returned as sent.
func ReadAuthorizationHeader(ctx *gin.Context) (string, string, error) {
	header := strings.TrimSpace(ctx.GetHeader("Authorization"))
	if header == "" {
		return "", "", ErrNoAuthorization
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", "", ErrMalformedAuthorization
	}

	return scheme, token, nil
}

func readToken(ctx *gin.Context, want string) (string, error) {
	scheme, token, err := ReadAuthorizationHeader(ctx)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(scheme, want) {
		return "", fmt.Errorf("%w: expected %s", ErrWrongTokenScheme, want)
	}

	return token, nil
}

// Authorization: Bearer <access token>
func ReadBearerToken(ctx *gin.Context) (string, error) {
	return readToken(ctx, SchemeBearer)
}

// Authorization: Refresh <refresh token>
func ReadRefreshToken(ctx *gin.Context) (string, error) {
	return readToken(ctx, SchemeRefresh)
}
