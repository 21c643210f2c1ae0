package token

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"chainboard/internal/constant"
	"chainboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.Users {
	return &model.Users{
		Id:            42,
		Email:         sql.NullString{String: "a@x.com", Valid: true},
		WalletAddress: sql.NullString{String: "0x52908400098527886E0F7030069857D2E4169EE7", Valid: true},
		Name:          "A",
		Role:          constant.RoleUser,
	}
}

func TestIssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	signed, expiresAt, err := m.Issue(testUser())
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims[CtxKeyUserId])
	assert.Equal(t, constant.RoleUser, claims[CtxKeyRole])
	assert.Equal(t, "a@x.com", claims[CtxKeyEmail])
	assert.Equal(t, "0x52908400098527886E0F7030069857D2E4169EE7", claims[CtxKeyWalletAddress])
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	signed, _, err := m.Issue(testUser())
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, _, err := NewManager("secret", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).Parse(signed)
	assert.Error(t, err)
}

func TestIssueOmitsAbsentIdentifiers(t *testing.T) {
	m := NewManager("secret", time.Hour)
	user := &model.Users{Id: 7, Name: "wallet-only", Role: constant.RoleUser}

	signed, _, err := m.Issue(user)
	require.NoError(t, err)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	_, hasEmail := claims[CtxKeyEmail]
	assert.False(t, hasEmail)
	_, hasWallet := claims[CtxKeyWalletAddress]
	assert.False(t, hasWallet)
}

func TestActorFromContext(t *testing.T) {
	tests := []struct {
		name    string
		userId  any
		role    any
		want    Actor
		wantErr bool
	}{
		{"json number", json.Number("42"), constant.RoleAdmin, Actor{UserId: 42, Role: constant.RoleAdmin}, false},
		{"float64", float64(7), constant.RoleUser, Actor{UserId: 7, Role: constant.RoleUser}, false},
		{"missing role defaults to user", int64(3), nil, Actor{UserId: 3, Role: constant.RoleUser}, false},
		{"missing user id", nil, constant.RoleUser, Actor{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.userId != nil {
				ctx = context.WithValue(ctx, CtxKeyUserId, tt.userId)
			}
			if tt.role != nil {
				ctx = context.WithValue(ctx, CtxKeyRole, tt.role)
			}

			actor, err := ActorFromContext(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, actor)
		})
	}
}

func TestActorIsAdmin(t *testing.T) {
	assert.True(t, Actor{Role: constant.RoleAdmin}.IsAdmin())
	assert.False(t, Actor{Role: constant.RoleUser}.IsAdmin())
}
