package auth

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"chainboard/internal/constant"
	"chainboard/internal/errorx"
	"chainboard/internal/model/modeltest"
	"chainboard/internal/svc"
	"chainboard/internal/token"
	"chainboard/internal/types"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/collection"
)

type staticCounter struct {
	count uint64
	err   error
}

func (c staticCounter) TransactionCount(context.Context, string) (uint64, error) {
	return c.count, c.err
}

type testEnv struct {
	svcCtx   *svc.ServiceContext
	users    *modeltest.Users
	profiles *modeltest.WalletProfiles
}

func newTestEnv(t *testing.T, counter staticCounter) *testEnv {
	t.Helper()

	cache, err := collection.NewCache(time.Minute)
	require.NoError(t, err)

	users := modeltest.NewUsers()
	profiles := modeltest.NewWalletProfiles()
	return &testEnv{
		svcCtx: &svc.ServiceContext{
			UsersDao:          users,
			WalletProfilesDao: profiles,
			Token:             token.NewManager("test-secret", time.Hour),
			TxCounter:         counter,
			NonceStore:        cache,
		},
		users:    users,
		profiles: profiles,
	}
}

func (e *testEnv) logic() *AuthLogic {
	return NewAuthLogic(context.Background(), e.svcCtx)
}

// walletLogin runs the nonce+sign+login dance for the given key.
func (e *testEnv) walletLogin(t *testing.T, key *ecdsa.PrivateKey) (*types.AuthResp, error) {
	t.Helper()

	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()
	nonce, err := e.logic().Nonce(&types.NonceReq{Address: addr})
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(nonce.Message)), key)
	require.NoError(t, err)
	sig[64] += 27

	return e.logic().WalletLogin(&types.WalletLoginReq{
		WalletAddress: addr,
		ChallengeId:   nonce.ChallengeId,
		Signature:     "0x" + hex.EncodeToString(sig),
	})
}

func TestRegisterThenLogin(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	reg, err := env.logic().Register(&types.RegisterReq{
		Email:    "a@x.com",
		Password: "Password123",
		Name:     "A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, constant.RoleUser, reg.User.Role)

	login, err := env.logic().Login(&types.LoginReq{Email: "a@x.com", Password: "Password123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.Id, login.User.Id)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	_, err := env.logic().Register(&types.RegisterReq{Email: "a@x.com", Password: "pw", Name: "A"})
	require.NoError(t, err)

	_, err = env.logic().Register(&types.RegisterReq{Email: "a@x.com", Password: "pw2", Name: "B"})
	require.Error(t, err)
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "email already registered", ce.Msg)
	assert.Equal(t, 1, env.users.Count(), "no duplicate row created")
}

func TestRegisterDuplicateWallet(t *testing.T) {
	env := newTestEnv(t, staticCounter{})
	addr := "0x52908400098527886E0F7030069857D2E4169EE7"

	_, err := env.logic().Register(&types.RegisterReq{
		Email: "a@x.com", Password: "pw", Name: "A", WalletAddress: addr,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.profiles.Count(), "primary profile created alongside the user")

	_, err = env.logic().Register(&types.RegisterReq{
		Email: "b@x.com", Password: "pw", Name: "B", WalletAddress: addr,
	})
	require.Error(t, err)
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "wallet address already registered", ce.Msg)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	_, err := env.logic().Register(&types.RegisterReq{Email: "a@x.com", Password: "right", Name: "A"})
	require.NoError(t, err)

	// Wallet-only identity with no password hash.
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	resp, err := env.walletLogin(t, key)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  types.LoginReq
	}{
		{"unknown email", types.LoginReq{Email: "nobody@x.com", Password: "whatever"}},
		{"wrong password", types.LoginReq{Email: "a@x.com", Password: "wrong"}},
		{"wallet-only identity", types.LoginReq{Email: resp.User.Email, Password: "whatever"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.logic().Login(&tt.req)
			require.Error(t, err)
			ce, ok := errorx.From(err)
			require.True(t, ok)
			assert.Equal(t, "invalid email or password", ce.Msg)
		})
	}
}

func TestWalletLoginAutoRegisters(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()

	first, err := env.walletLogin(t, key)
	require.NoError(t, err)
	assert.Equal(t, addr, first.User.WalletAddress)
	assert.Equal(t, "User "+addr[2:8], first.User.Name)
	assert.Equal(t, 1, env.users.Count())
	assert.Equal(t, 1, env.profiles.Count())

	profile, err := env.profiles.FindOneByAddress(context.Background(), addr)
	require.NoError(t, err)
	assert.True(t, profile.IsPrimary)

	// Second login with a fresh challenge is idempotent.
	second, err := env.walletLogin(t, key)
	require.NoError(t, err)
	assert.Equal(t, first.User.Id, second.User.Id)
	assert.Equal(t, 1, env.users.Count())
	assert.Equal(t, 1, env.profiles.Count())
}

func TestWalletLoginRejectsReplayedChallenge(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()

	nonce, err := env.logic().Nonce(&types.NonceReq{Address: addr})
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(nonce.Message)), key)
	require.NoError(t, err)
	sig[64] += 27
	req := &types.WalletLoginReq{
		WalletAddress: addr,
		ChallengeId:   nonce.ChallengeId,
		Signature:     "0x" + hex.EncodeToString(sig),
	}

	_, err = env.logic().WalletLogin(req)
	require.NoError(t, err)

	// The nonce was consumed: the captured signature must not work twice.
	_, err = env.logic().WalletLogin(req)
	require.Error(t, err)
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "wallet authentication failed", ce.Msg)
}

func TestWalletLoginRejectsForeignSignature(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	attacker, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()

	nonce, err := env.logic().Nonce(&types.NonceReq{Address: addr})
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(nonce.Message)), attacker)
	require.NoError(t, err)
	sig[64] += 27

	_, err = env.logic().WalletLogin(&types.WalletLoginReq{
		WalletAddress: addr,
		ChallengeId:   nonce.ChallengeId,
		Signature:     "0x" + hex.EncodeToString(sig),
	})
	require.Error(t, err)
	assert.Equal(t, 0, env.users.Count(), "failed verification must not create state")
}

func TestWalletLoginVerificationTier(t *testing.T) {
	tests := []struct {
		name     string
		counter  staticCounter
		wantTier string
	}{
		{"active wallet above threshold", staticCounter{count: 15}, constant.TierVerified},
		{"some activity below threshold", staticCounter{count: 5}, constant.TierPending},
		{"no activity", staticCounter{count: 0}, constant.TierPending},
		{"oracle failure degrades to zero", staticCounter{err: errors.New("rpc down")}, constant.TierPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.counter)

			key, err := crypto.GenerateKey()
			require.NoError(t, err)

			resp, err := env.walletLogin(t, key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, resp.User.VerificationTier)
		})
	}
}
