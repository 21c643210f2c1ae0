package walletprofile

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"chainboard/internal/constant"
	"chainboard/internal/errorx"
	"chainboard/internal/model"
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
			TxCounter:         counter,
			NonceStore:        cache,
		},
		users:    users,
		profiles: profiles,
	}
}

func (e *testEnv) logic() *WalletProfileLogic {
	return NewWalletProfileLogic(context.Background(), e.svcCtx)
}

// signChallenge issues a challenge for the key's address and signs it.
func (e *testEnv) signChallenge(t *testing.T, key *ecdsa.PrivateKey) *types.WalletLinkReq {
	t.Helper()

	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()
	ch, id, _, err := e.svcCtx.IssueChallenge(addr)
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(ch.Message)), key)
	require.NoError(t, err)
	sig[64] += 27

	return &types.WalletLinkReq{
		WalletAddress: addr,
		ChallengeId:   id,
		Signature:     "0x" + hex.EncodeToString(sig),
		WalletKind:    string(constant.WalletKindMetamask),
	}
}

func actor(id int64) token.Actor {
	return token.Actor{UserId: id, Role: constant.RoleUser}
}

func TestLinkCreatesPrimaryProfile(t *testing.T) {
	env := newTestEnv(t, staticCounter{})
	require.NoError(t, env.users.Insert(context.Background(), &model.Users{Name: "A", Role: constant.RoleUser}))

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	req := env.signChallenge(t, key)

	info, err := env.logic().Link(actor(1), req)
	require.NoError(t, err)
	assert.True(t, info.IsPrimary)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), info.WalletAddress)

	user, err := env.users.FindOneById(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, info.WalletAddress, user.WalletAddress.String)
}

func TestLinkRejectsBadSignature(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	attacker, err := crypto.GenerateKey()
	require.NoError(t, err)

	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()
	ch, id, _, err := env.svcCtx.IssueChallenge(addr)
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(ch.Message)), attacker)
	require.NoError(t, err)
	sig[64] += 27

	_, err = env.logic().Link(actor(1), &types.WalletLinkReq{
		WalletAddress: addr,
		ChallengeId:   id,
		Signature:     "0x" + hex.EncodeToString(sig),
	})
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "invalid signature", ce.Msg)
	assert.Equal(t, 0, env.profiles.Count())
}

func TestLinkConflictLeavesStateUntouched(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, err = env.logic().Link(actor(1), env.signChallenge(t, key))
	require.NoError(t, err)

	// A second account proving ownership of the same wallet is still refused.
	_, err = env.logic().Link(actor(2), env.signChallenge(t, key))
	require.Error(t, err)
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "wallet already linked to another account", ce.Msg)
	assert.Equal(t, 1, env.profiles.Count())
}

func TestLinkSameAccountPromotesToPrimary(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	first, err := crypto.GenerateKey()
	require.NoError(t, err)
	second, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, err = env.logic().Link(actor(1), env.signChallenge(t, first))
	require.NoError(t, err)
	_, err = env.logic().Link(actor(1), env.signChallenge(t, second))
	require.NoError(t, err)

	// Re-link the first wallet: it becomes primary again, no new row.
	info, err := env.logic().Link(actor(1), env.signChallenge(t, first))
	require.NoError(t, err)
	assert.True(t, info.IsPrimary)
	assert.Equal(t, 2, env.profiles.Count())

	resp, err := env.logic().List(actor(1))
	require.NoError(t, err)
	primaries := 0
	for _, p := range resp.List {
		if p.IsPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries, "exactly one primary wallet per account")
}

func TestSetPrimaryIsExclusive(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	first, err := crypto.GenerateKey()
	require.NoError(t, err)
	second, err := crypto.GenerateKey()
	require.NoError(t, err)

	a, err := env.logic().Link(actor(1), env.signChallenge(t, first))
	require.NoError(t, err)
	b, err := env.logic().Link(actor(1), env.signChallenge(t, second))
	require.NoError(t, err)
	assert.True(t, b.IsPrimary)

	got, err := env.logic().SetPrimary(actor(1), &types.WalletProfileIdReq{Id: a.Id})
	require.NoError(t, err)
	assert.True(t, got.IsPrimary)

	other, err := env.profiles.FindOneById(context.Background(), b.Id)
	require.NoError(t, err)
	assert.False(t, other.IsPrimary)

	// Another user cannot learn the profile exists.
	_, err = env.logic().SetPrimary(actor(2), &types.WalletProfileIdReq{Id: a.Id})
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "wallet profile not found", ce.Msg)
}

func TestRefreshUpdatesActivityAndTier(t *testing.T) {
	env := newTestEnv(t, staticCounter{count: 250})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	linked, err := env.logic().Link(actor(1), env.signChallenge(t, key))
	require.NoError(t, err)

	info, err := env.logic().Refresh(actor(1), &types.WalletProfileIdReq{Id: linked.Id})
	require.NoError(t, err)
	assert.EqualValues(t, 250, info.TxCount)
	assert.Equal(t, constant.MaxReputationScore, info.ReputationScore, "score is capped")
}

func TestRefreshDegradesOnOracleFailure(t *testing.T) {
	env := newTestEnv(t, staticCounter{err: errors.New("rpc down")})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	linked, err := env.logic().Link(actor(1), env.signChallenge(t, key))
	require.NoError(t, err)

	info, err := env.logic().Refresh(actor(1), &types.WalletProfileIdReq{Id: linked.Id})
	require.NoError(t, err)
	assert.EqualValues(t, 0, info.TxCount)
	assert.Equal(t, 0, info.ReputationScore)
}

func TestDeleteOwnerOnly(t *testing.T) {
	env := newTestEnv(t, staticCounter{})

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	linked, err := env.logic().Link(actor(1), env.signChallenge(t, key))
	require.NoError(t, err)

	err = env.logic().Delete(actor(2), &types.WalletProfileIdReq{Id: linked.Id})
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "wallet profile not found", ce.Msg)
	assert.Equal(t, 1, env.profiles.Count())

	require.NoError(t, env.logic().Delete(actor(1), &types.WalletProfileIdReq{Id: linked.Id}))
	assert.Equal(t, 0, env.profiles.Count())
}
