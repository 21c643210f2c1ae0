package application

import (
	"context"
	"errors"

	"chainboard/internal/authz"
	"chainboard/internal/constant"
	"chainboard/internal/errorx"
	"chainboard/internal/model"
	"chainboard/internal/pagination"
	"chainboard/internal/svc"
	"chainboard/internal/token"
	"chainboard/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ApplicationLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewApplicationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ApplicationLogic {
	return &ApplicationLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Create applies the actor to a job. One application per job per user.
func (l *ApplicationLogic) Create(actor token.Actor, req *types.ApplicationCreateReq) (*types.ApplicationInfo, error) {
	job, err := l.svcCtx.JobsDao.FindOneById(l.ctx, req.JobId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("job not found")
		}
		return nil, err
	}
	if job.UserId == actor.UserId {
		return nil, errorx.BadRequest("You cannot apply to your own job")
	}

	if _, err := l.svcCtx.ApplicationsDao.FindOneByJobAndUser(l.ctx, req.JobId, actor.UserId); err == nil {
		return nil, errorx.BadRequest("You have already applied to this job")
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	app := &model.Applications{
		JobId:       req.JobId,
		UserId:      actor.UserId,
		CoverLetter: req.CoverLetter,
		Status:      constant.ApplicationStatusPending,
	}
	if err := l.svcCtx.ApplicationsDao.Insert(l.ctx, app); err != nil {
		return nil, err
	}
	info := toApplicationInfo(app)
	return &info, nil
}

// ListMine pages the actor's own applications.
func (l *ApplicationLogic) ListMine(actor token.Actor, req *types.ApplicationListReq) (*types.ApplicationListResp, error) {
	page, pageSize := pagination.Normalize(req.Page, req.PageSize)
	apps, total, err := l.svcCtx.ApplicationsDao.FindPageByUserId(l.ctx, actor.UserId, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}
	return toListResp(apps, total, page, pageSize), nil
}

// ListByJob pages a posting's applications; job owner or admin only.
func (l *ApplicationLogic) ListByJob(actor token.Actor, req *types.ApplicationsByJobReq) (*types.ApplicationListResp, error) {
	job, err := l.svcCtx.JobsDao.FindOneById(l.ctx, req.JobId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("job not found")
		}
		return nil, err
	}
	if !authz.CanMutate(actor, job.UserId) {
		return nil, errorx.Forbidden("Unauthorized to view applications for this job")
	}

	page, pageSize := pagination.Normalize(req.Page, req.PageSize)
	apps, total, err := l.svcCtx.ApplicationsDao.FindPageByJobId(l.ctx, req.JobId, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}
	return toListResp(apps, total, page, pageSize), nil
}

// Get returns one application to its participants. Non-participants receive
// the same error as a missing application.
func (l *ApplicationLogic) Get(actor token.Actor, req *types.ApplicationIdReq) (*types.ApplicationInfo, error) {
	app, job, err := l.findWithJob(req.Id)
	if err != nil {
		return nil, err
	}
	if !authz.IsParticipant(actor, app.UserId, job.UserId) {
		return nil, errorx.NotFound("application not found")
	}
	info := toApplicationInfo(app)
	return &info, nil
}

// UpdateStatus moves an application through the review pipeline; job owner or
// admin only.
func (l *ApplicationLogic) UpdateStatus(actor token.Actor, req *types.ApplicationStatusReq) (*types.ApplicationInfo, error) {
	app, job, err := l.findWithJob(req.Id)
	if err != nil {
		return nil, err
	}
	if !authz.CanMutate(actor, job.UserId) {
		return nil, errorx.NotFound("application not found")
	}

	if err := l.svcCtx.ApplicationsDao.UpdateStatus(l.ctx, app.Id, req.Status); err != nil {
		return nil, err
	}
	app.Status = req.Status
	info := toApplicationInfo(app)
	return &info, nil
}

func (l *ApplicationLogic) findWithJob(id int64) (*model.Applications, *model.Jobs, error) {
	app, err := l.svcCtx.ApplicationsDao.FindOneById(l.ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, errorx.NotFound("application not found")
		}
		return nil, nil, err
	}
	job, err := l.svcCtx.JobsDao.FindOneById(l.ctx, app.JobId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, errorx.NotFound("application not found")
		}
		return nil, nil, err
	}
	return app, job, nil
}

func toListResp(apps []*model.Applications, total int64, page, pageSize int) *types.ApplicationListResp {
	list := make([]types.ApplicationInfo, 0, len(apps))
	for _, a := range apps {
		list = append(list, toApplicationInfo(a))
	}
	return &types.ApplicationListResp{List: list, Total: total, Page: page, PageSize: pageSize}
}

func toApplicationInfo(app *model.Applications) types.ApplicationInfo {
	return types.ApplicationInfo{
		Id:          app.Id,
		JobId:       app.JobId,
		UserId:      app.UserId,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt.Unix(),
	}
}
