package walletprofile

import (
	"context"
	"errors"

	"chainboard/internal/constant"
	"chainboard/internal/errorx"
	"chainboard/internal/model"
	"chainboard/internal/svc"
	"chainboard/internal/token"
	"chainboard/internal/types"
	"chainboard/internal/walletsig"

	"github.com/zeromicro/go-zero/core/logx"
)

type WalletProfileLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewWalletProfileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WalletProfileLogic {
	return &WalletProfileLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Link binds a wallet to the actor's account after a signature proof. The
// cross-account conflict check runs before any mutation.
func (l *WalletProfileLogic) Link(actor token.Actor, req *types.WalletLinkReq) (*types.WalletProfileInfo, error) {
	canonical, ok := walletsig.Canonicalize(req.WalletAddress)
	if !ok {
		return nil, errorx.BadRequest("invalid wallet address")
	}

	ch, ok := l.svcCtx.GetChallenge(req.ChallengeId)
	if !ok || ch.Address != canonical {
		return nil, errorx.Unauthorized("invalid signature")
	}
	if !walletsig.Verify(ch.Message, req.Signature, canonical) {
		return nil, errorx.Unauthorized("invalid signature")
	}
	l.svcCtx.ConsumeChallenge(req.ChallengeId)

	existing, err := l.svcCtx.WalletProfilesDao.FindOneByAddress(l.ctx, canonical)
	if err == nil {
		if existing.UserId != actor.UserId {
			return nil, errorx.Conflict("wallet already linked to another account")
		}
		// Already linked to this account: promote it to primary.
		if err := l.svcCtx.UsersDao.UpdateWalletAddress(l.ctx, actor.UserId, canonical); err != nil {
			return nil, err
		}
		if err := l.svcCtx.WalletProfilesDao.SetPrimary(l.ctx, actor.UserId, existing.Id); err != nil {
			return nil, err
		}
		existing.IsPrimary = true
		info := toProfileInfo(existing)
		return &info, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	if err := l.svcCtx.UsersDao.UpdateWalletAddress(l.ctx, actor.UserId, canonical); err != nil {
		return nil, err
	}
	profile := &model.WalletProfiles{
		UserId:        actor.UserId,
		WalletAddress: canonical,
		WalletKind:    req.WalletKind,
	}
	if err := l.svcCtx.WalletProfilesDao.CreatePrimary(l.ctx, profile); err != nil {
		return nil, err
	}
	info := toProfileInfo(profile)
	return &info, nil
}

// List returns the actor's linked wallets, primary first.
func (l *WalletProfileLogic) List(actor token.Actor) (*types.WalletProfileListResp, error) {
	profiles, err := l.svcCtx.WalletProfilesDao.FindAllByUserId(l.ctx, actor.UserId)
	if err != nil {
		return nil, err
	}

	list := make([]types.WalletProfileInfo, 0, len(profiles))
	for _, p := range profiles {
		list = append(list, toProfileInfo(p))
	}
	return &types.WalletProfileListResp{List: list}, nil
}

// SetPrimary designates one of the actor's wallets as primary. The sibling
// unset and the set run in one transaction.
func (l *WalletProfileLogic) SetPrimary(actor token.Actor, req *types.WalletProfileIdReq) (*types.WalletProfileInfo, error) {
	profile, err := l.findOwned(actor, req.Id)
	if err != nil {
		return nil, err
	}

	if err := l.svcCtx.WalletProfilesDao.SetPrimary(l.ctx, actor.UserId, profile.Id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("wallet profile not found")
		}
		return nil, err
	}
	profile.IsPrimary = true
	info := toProfileInfo(profile)
	return &info, nil
}

// Refresh re-queries the chain-activity oracle and updates the tx-count
// snapshot, reputation score and the owner's verification tier. Oracle
// failures degrade to a count of zero.
func (l *WalletProfileLogic) Refresh(actor token.Actor, req *types.WalletProfileIdReq) (*types.WalletProfileInfo, error) {
	profile, err := l.findOwned(actor, req.Id)
	if err != nil {
		return nil, err
	}

	count, err := l.svcCtx.TxCounter.TransactionCount(l.ctx, profile.WalletAddress)
	if err != nil {
		l.Infof("tx count lookup failed for %s: %v", profile.WalletAddress, err)
		count = 0
	}

	score := int(count)
	if score > constant.MaxReputationScore {
		score = constant.MaxReputationScore
	}
	if err := l.svcCtx.WalletProfilesDao.UpdateActivity(l.ctx, profile.Id, int64(count), score); err != nil {
		return nil, err
	}
	profile.TxCount = int64(count)
	profile.ReputationScore = score

	if count > 0 {
		tier := constant.TierPending
		if count > constant.VerifiedTxThreshold {
			tier = constant.TierVerified
		}
		if err := l.svcCtx.UsersDao.UpdateVerificationTier(l.ctx, profile.UserId, tier); err != nil {
			l.Errorf("failed to update verification tier for user %d: %v", profile.UserId, err)
		}
	}

	info := toProfileInfo(profile)
	return &info, nil
}

// Delete unlinks a wallet; owner only. Others cannot learn the profile
// exists.
func (l *WalletProfileLogic) Delete(actor token.Actor, req *types.WalletProfileIdReq) error {
	profile, err := l.findOwned(actor, req.Id)
	if err != nil {
		return err
	}
	return l.svcCtx.WalletProfilesDao.Delete(l.ctx, profile.Id)
}

func (l *WalletProfileLogic) findOwned(actor token.Actor, id int64) (*model.WalletProfiles, error) {
	profile, err := l.svcCtx.WalletProfilesDao.FindOneById(l.ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("wallet profile not found")
		}
		return nil, err
	}
	if profile.UserId != actor.UserId && !actor.IsAdmin() {
		return nil, errorx.NotFound("wallet profile not found")
	}
	return profile, nil
}

func toProfileInfo(p *model.WalletProfiles) types.WalletProfileInfo {
	return types.WalletProfileInfo{
		Id:              p.Id,
		UserId:          p.UserId,
		WalletAddress:   p.WalletAddress,
		WalletKind:      p.WalletKind,
		IsPrimary:       p.IsPrimary,
		ReputationScore: p.ReputationScore,
		TxCount:         p.TxCount,
		CreatedAt:       p.CreatedAt.Unix(),
	}
}
