package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"passport/config"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/result"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

const (
	defaultAccessTTL  = "15m"
	defaultRefreshTTL = "30d"
)

// tokenClaims is the claim set carried inside issued tokens.
type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard with an HMAC signature.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService validates the signing configuration and parses both TTLs.
// Malformed TTLs fail here, before any token is ever signed.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token.Secret == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	accessTTL := cfg.Token.AccessTTL
	if accessTTL == "" {
		accessTTL = defaultAccessTTL
	}
	refreshTTL := cfg.Token.RefreshTTL
	if refreshTTL == "" {
		refreshTTL = defaultRefreshTTL
	}

	access, err := ParseTTL(accessTTL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token ttl")
	}

	refresh, err := ParseTTL(refreshTTL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token ttl")
	}

	return &jwtService{
		secret:     []byte(cfg.Token.Secret),
		accessTTL:  access,
		refreshTTL: refresh,
	}, nil
}

// Issue signs the payload with the TTL configured for its token type.
func (s *jwtService) Issue(payload entity.TokenPayload) (string, error) {
	if !payload.Type.Valid() {
		return "", errors.Errorf("unknown token type: %s", payload.Type)
	}

	ttl := s.accessTTL
	if payload.Type == entity.TokenTypeRefresh {
		ttl = s.refreshTTL
	}

	return s.sign(payload, time.Now().Add(ttl))
}

// Verify checks the signature and expiry of a token and extracts its payload.
// Expired and structurally invalid tokens map to distinct domain errors so
// callers can branch on which occurred.
func (s *jwtService) Verify(token string) result.Result[entity.TokenPayload] {
	claims := &tokenClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return result.Fail[entity.TokenPayload](domainerrors.ErrExpiredToken.WrapMessage("token expired"))
		}

		return result.Fail[entity.TokenPayload](domainerrors.ErrInvalidToken.WrapMessage(err.Error()))
	}
	if !parsed.Valid {
		return result.Fail[entity.TokenPayload](domainerrors.ErrInvalidToken.WrapMessage("token not valid"))
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return result.Fail[entity.TokenPayload](domainerrors.ErrInvalidToken.WrapMessage("malformed subject claim"))
	}

	tokenType := entity.TokenType(claims.Type)
	if !tokenType.Valid() {
		return result.Fail[entity.TokenPayload](domainerrors.ErrInvalidToken.WrapMessage("malformed type claim"))
	}

	return result.Ok(entity.TokenPayload{
		UserID: userID,
		Type:   tokenType,
	})
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// sign builds and signs a token expiring at the given instant.
func (s *jwtService) sign(payload entity.TokenPayload, expiresAt time.Time) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Type: string(payload.Type),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(payload.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
