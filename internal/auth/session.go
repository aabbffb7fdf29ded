package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind separates the two session namespaces. It is also the token audience,
// so an admin token never validates as a member token and vice versa.
type Kind string

const (
	KindAdmin  Kind = "admin"
	KindMember Kind = "member"
)

const (
	jwtIssuer = "fitlife-api"

	SessionTTL = 24 * time.Hour
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = fmt.Errorf("%w: token expired", ErrInvalidToken)
	ErrTokenRevoked   = fmt.Errorf("%w: token revoked", ErrInvalidToken)
	ErrEmptyJWTSecret = errors.New("jwt secret cannot be empty")
)

type SessionClaims struct {
	PrincipalID int `json:"pid"`
	jwt.RegisteredClaims
}

// Principal is the identity recovered from a valid session token.
type Principal struct {
	ID        int
	Kind      Kind
	TokenID   string
	ExpiresAt time.Time
}

type SessionIssuer struct {
	secret      []byte
	ttl         time.Duration
	now         func() time.Time
	revocations RevocationStore
}

type Option func(*SessionIssuer)

func WithClock(now func() time.Time) Option {
	return func(s *SessionIssuer) {
		s.now = now
	}
}

func NewSessionIssuer(secret string, revocations RevocationStore, opts ...Option) (*SessionIssuer, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}
	if revocations == nil {
		revocations = NoopRevocationStore{}
	}

	s := &SessionIssuer{
		secret:      []byte(secret),
		ttl:         SessionTTL,
		now:         time.Now,
		revocations: revocations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SessionIssuer) Issue(principalID int, kind Kind) (string, time.Time, error) {
	// exp is carried in whole seconds; the reported expiry must match it.
	now := s.now().Truncate(jwt.TimePrecision)
	expiresAt := now.Add(s.ttl)

	claims := &SessionClaims{
		PrincipalID: principalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Subject:   strconv.Itoa(principalID),
			Audience:  jwt.ClaimStrings{string(kind)},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate accepts a token only for the namespace it was issued in and only
// until its expiry or revocation.
func (s *SessionIssuer) Validate(ctx context.Context, tokenString string, kind Kind) (*Principal, error) {
	claims, err := s.parse(tokenString, kind)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return principalFrom(claims, kind), nil
}

// Revoke invalidates a still-valid token until its natural expiry.
func (s *SessionIssuer) Revoke(ctx context.Context, tokenString string, kind Kind) error {
	claims, err := s.parse(tokenString, kind)
	if err != nil {
		return err
	}
	if claims.ID == "" {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *SessionIssuer) parse(tokenString string, kind Kind) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(jwtIssuer),
		jwt.WithAudience(string(kind)),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.PrincipalID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func principalFrom(claims *SessionClaims, kind Kind) *Principal {
	p := &Principal{
		ID:      claims.PrincipalID,
		Kind:    kind,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p
}
