package auth

import (
	"errors"
	"time"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidToken = errors.New("jwt token is not valid")

type JWT struct {
	logger     *zap.SugaredLogger
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type JWTInterface interface {
	GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error)
	VerifyJwtToken(token string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("test")
	}

	accessTTL, refreshTTL := cfg.AccessTokenTTL, cfg.RefreshTokenTTL
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	return &JWT{
		jwtSecret:  cfg.JWT_SECRET,
		logger:     logger,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type JWTPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"usuario"`
	Email    string `json:"email"`
	Name     string `json:"nombre"`
}

type JWTClaims struct {
	User JWTPayload `json:"user"`
	Type string     `json:"type"`
	JTI  string     `json:"jti"`
	IAT  int64      `json:"iat"`
	EXP  int64      `json:"exp"`
}

type tokenClaims struct {
	User JWTPayload `json:"user"`
	Type string     `json:"type"`
	jwt.RegisteredClaims
}

func (j JWT) sign(payload JWTPayload, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		User: payload,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti, keeps two tokens issued in the same second distinct
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.jwtSecret))
}

// Return refreshToken, accessToken, error
func (j JWT) GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error) {
	j.logger.Debugf("Generate refresh and access token with payload: %v", payload)

	refreshToken, err := j.sign(payload, constant.JWT_TYPE_REFRESH, j.refreshTTL)
	if err != nil {
		return nil, nil, err
	}

	accessToken, err := j.sign(payload, constant.JWT_TYPE_ACCESS, j.accessTTL)
	if err != nil {
		return nil, nil, err
	}

	return &refreshToken, &accessToken, nil
}

func (j JWT) VerifyJwtToken(token string) (*JWTClaims, error) {
	var claims tokenClaims
	parsedToken, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, ErrInvalidToken
	}

	if claims.Type != constant.JWT_TYPE_ACCESS && claims.Type != constant.JWT_TYPE_REFRESH {
		return nil, errors.New("invalid token: type field is missing or malformed")
	}

	out := &JWTClaims{
		User: claims.User,
		Type: claims.Type,
		JTI:  claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IAT = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		out.EXP = claims.ExpiresAt.Unix()
	}

	return out, nil
}
