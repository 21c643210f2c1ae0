// Package token mints and validates the HS256 session tokens consumed by the
// JWT route group.
package token

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chainboard/internal/constant"
	"chainboard/internal/model"

	"github.com/golang-jwt/jwt/v4"
)

// Context keys under which the JWT middleware stores claims.
const (
	CtxKeyUserId        = "userId"
	CtxKeyRole          = "role"
	CtxKeyEmail         = "email"
	CtxKeyWalletAddress = "walletAddress"
)

// Manager issues session tokens signed with the server secret.
type Manager struct {
	secret []byte
	expire time.Duration
}

func NewManager(secret string, expire time.Duration) *Manager {
	return &Manager{secret: []byte(secret), expire: expire}
}

// Issue mints a token for the given user. Returns the signed token and its
// expiry as a unix timestamp.
func (m *Manager) Issue(user *model.Users) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(m.expire).Unix()

	claims := jwt.MapClaims{
		"iat":          now.Unix(),
		"exp":          expiresAt,
		CtxKeyUserId:   user.Id,
		CtxKeyRole:     user.Role,
	}
	if user.Email.Valid {
		claims[CtxKeyEmail] = user.Email.String
	}
	if user.WalletAddress.Valid {
		claims[CtxKeyWalletAddress] = user.WalletAddress.String
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, expiresAt, nil
}

// Parse validates a token and returns its claims. Expired and badly-signed
// tokens fail the same way.
func (m *Manager) Parse(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Actor is the authenticated caller extracted from request context.
type Actor struct {
	UserId int64
	Role   string
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

// ActorFromContext reads the identity the JWT middleware injected into the
// request context.
func ActorFromContext(ctx context.Context) (Actor, error) {
	id, err := int64FromCtx(ctx, CtxKeyUserId)
	if err != nil {
		return Actor{}, err
	}
	role, _ := ctx.Value(CtxKeyRole).(string)
	if role == "" {
		role = constant.RoleUser
	}
	return Actor{UserId: id, Role: role}, nil
}

func int64FromCtx(ctx context.Context, key string) (int64, error) {
	switch v := ctx.Value(key).(type) {
	case json.Number:
		return v.Int64()
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	}
	return 0, fmt.Errorf("missing claim %s", key)
}
