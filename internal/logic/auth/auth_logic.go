package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chainboard/internal/constant"
	"chainboard/internal/errorx"
	"chainboard/internal/model"
	"chainboard/internal/svc"
	"chainboard/internal/types"
	"chainboard/internal/walletsig"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/crypto/bcrypt"
)

var errWalletAuthFailed = errorx.Unauthorized("wallet authentication failed")

type AuthLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAuthLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AuthLogic {
	return &AuthLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Register creates an email/password identity, optionally linking a wallet
// address, and returns a session token.
func (l *AuthLogic) Register(req *types.RegisterReq) (*types.AuthResp, error) {
	var canonical string
	if req.WalletAddress != "" {
		var ok bool
		canonical, ok = walletsig.Canonicalize(req.WalletAddress)
		if !ok {
			return nil, errorx.BadRequest("invalid wallet address")
		}
	}

	if _, err := l.svcCtx.UsersDao.FindOneByEmail(l.ctx, req.Email); err == nil {
		return nil, errorx.Conflict("email already registered")
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}
	if canonical != "" {
		if _, err := l.svcCtx.UsersDao.FindOneByWalletAddress(l.ctx, canonical); err == nil {
			return nil, errorx.Conflict("wallet address already registered")
		} else if !errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.Users{
		Email:            sql.NullString{String: req.Email, Valid: true},
		PasswordHash:     sql.NullString{String: string(hash), Valid: true},
		WalletAddress:    sql.NullString{String: canonical, Valid: canonical != ""},
		Name:             req.Name,
		Role:             constant.RoleUser,
		VerificationTier: constant.TierPending,
	}
	if err := l.svcCtx.UsersDao.Insert(l.ctx, user); err != nil {
		return nil, err
	}

	if canonical != "" {
		profile := &model.WalletProfiles{
			UserId:        user.Id,
			WalletAddress: canonical,
			WalletKind:    string(constant.WalletKindMetamask),
		}
		if err := l.svcCtx.WalletProfilesDao.CreatePrimary(l.ctx, profile); err != nil {
			return nil, err
		}
	}

	return l.issueSession(user)
}

// Login resolves an email/password pair. Unknown emails, wallet-only
// identities and wrong passwords are indistinguishable to the caller.
func (l *AuthLogic) Login(req *types.LoginReq) (*types.AuthResp, error) {
	invalid := errorx.Unauthorized("invalid email or password")

	user, err := l.svcCtx.UsersDao.FindOneByEmail(l.ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if !user.PasswordHash.Valid {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(req.Password)); err != nil {
		return nil, invalid
	}

	return l.issueSession(user)
}

// Nonce issues a single-use login challenge for the given address.
func (l *AuthLogic) Nonce(req *types.NonceReq) (*types.NonceResp, error) {
	canonical, ok := walletsig.Canonicalize(req.Address)
	if !ok {
		return nil, errorx.BadRequest("invalid wallet address")
	}

	ch, id, nonce, err := l.svcCtx.IssueChallenge(canonical)
	if err != nil {
		return nil, err
	}
	return &types.NonceResp{
		ChallengeId: id,
		Nonce:       nonce,
		Message:     ch.Message,
	}, nil
}

// WalletLogin resolves a wallet-signature identity, auto-registering the
// address on first sight. Every failure in this flow collapses into the same
// Unauthorized error; the cause is only logged.
func (l *AuthLogic) WalletLogin(req *types.WalletLoginReq) (*types.AuthResp, error) {
	canonical, ok := walletsig.Canonicalize(req.WalletAddress)
	if !ok {
		l.Errorf("wallet login: malformed address %q", req.WalletAddress)
		return nil, errWalletAuthFailed
	}

	ch, ok := l.svcCtx.GetChallenge(req.ChallengeId)
	if !ok {
		l.Errorf("wallet login: unknown or expired challenge %s", req.ChallengeId)
		return nil, errWalletAuthFailed
	}
	if ch.Address != canonical {
		l.Errorf("wallet login: challenge address mismatch for %s", canonical)
		return nil, errWalletAuthFailed
	}
	if !walletsig.Verify(ch.Message, req.Signature, canonical) {
		return nil, errWalletAuthFailed
	}
	// Single use: a replayed signature over the same message must fail.
	l.svcCtx.ConsumeChallenge(req.ChallengeId)

	user, err := l.svcCtx.UsersDao.FindOneByWalletAddress(l.ctx, canonical)
	if errors.Is(err, model.ErrNotFound) {
		user, err = l.autoRegister(canonical)
	}
	if err != nil {
		l.Errorf("wallet login: %v", err)
		return nil, errWalletAuthFailed
	}

	l.refreshVerificationTier(user, canonical)

	return l.issueSession(user)
}

// Me returns the stripped identity of the current actor.
func (l *AuthLogic) Me(userId int64) (*types.UserInfo, error) {
	user, err := l.svcCtx.UsersDao.FindOneById(l.ctx, userId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("user not found")
		}
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

func (l *AuthLogic) autoRegister(canonical string) (*model.Users, error) {
	user := &model.Users{
		WalletAddress:    sql.NullString{String: canonical, Valid: true},
		Name:             fmt.Sprintf("User %s", canonical[2:8]),
		Role:             constant.RoleUser,
		VerificationTier: constant.TierPending,
	}
	if err := l.svcCtx.UsersDao.Insert(l.ctx, user); err != nil {
		return nil, err
	}

	profile := &model.WalletProfiles{
		UserId:        user.Id,
		WalletAddress: canonical,
		WalletKind:    string(constant.WalletKindMetamask),
	}
	if err := l.svcCtx.WalletProfilesDao.CreatePrimary(l.ctx, profile); err != nil {
		return nil, err
	}
	return user, nil
}

// refreshVerificationTier consults the chain-activity oracle. Oracle failures
// degrade to a count of zero and leave the tier untouched.
func (l *AuthLogic) refreshVerificationTier(user *model.Users, address string) {
	count, err := l.svcCtx.TxCounter.TransactionCount(l.ctx, address)
	if err != nil {
		l.Infof("tx count lookup failed for %s, keeping tier: %v", address, err)
		return
	}
	if count == 0 {
		return
	}

	tier := constant.TierPending
	if count > constant.VerifiedTxThreshold {
		tier = constant.TierVerified
	}
	if tier == user.VerificationTier {
		return
	}
	if err := l.svcCtx.UsersDao.UpdateVerificationTier(l.ctx, user.Id, tier); err != nil {
		l.Errorf("failed to update verification tier for user %d: %v", user.Id, err)
		return
	}
	user.VerificationTier = tier
}

func (l *AuthLogic) issueSession(user *model.Users) (*types.AuthResp, error) {
	tok, expiresAt, err := l.svcCtx.Token.Issue(user)
	if err != nil {
		return nil, err
	}
	return &types.AuthResp{
		User:      ToUserInfo(user),
		Token:     tok,
		ExpiresAt: expiresAt,
	}, nil
}

// ToUserInfo projects a user row onto its public view. The password hash
// never crosses this boundary.
func ToUserInfo(user *model.Users) types.UserInfo {
	return types.UserInfo{
		Id:               user.Id,
		Email:            user.Email.String,
		WalletAddress:    user.WalletAddress.String,
		Name:             user.Name,
		Role:             user.Role,
		VerificationTier: user.VerificationTier,
		AvatarUrl:        user.AvatarUrl.String,
	}
}
