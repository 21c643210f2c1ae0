package resume

import (
	"context"
	"errors"

	"chainboard/internal/authz"
	"chainboard/internal/errorx"
	"chainboard/internal/model"
	"chainboard/internal/pagination"
	"chainboard/internal/svc"
	"chainboard/internal/token"
	"chainboard/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ResumeLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewResumeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResumeLogic {
	return &ResumeLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Create stores the actor's resume. One per user.
func (l *ResumeLogic) Create(actor token.Actor, req *types.ResumeCreateReq) (*types.ResumeInfo, error) {
	if _, err := l.svcCtx.ResumesDao.FindOneByUserId(l.ctx, actor.UserId); err == nil {
		return nil, errorx.Conflict("resume already exists")
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	resume := &model.Resumes{
		UserId:     actor.UserId,
		Title:      req.Title,
		Summary:    req.Summary,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
	}
	if err := l.svcCtx.ResumesDao.Insert(l.ctx, resume); err != nil {
		return nil, err
	}
	info := toResumeInfo(resume)
	return &info, nil
}

// GetMine returns the actor's own resume.
func (l *ResumeLogic) GetMine(actor token.Actor) (*types.ResumeInfo, error) {
	resume, err := l.svcCtx.ResumesDao.FindOneByUserId(l.ctx, actor.UserId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("resume not found")
		}
		return nil, err
	}
	info := toResumeInfo(resume)
	return &info, nil
}

// List pages all resumes. Admin only.
func (l *ResumeLogic) List(actor token.Actor, req *types.ResumeListReq) (*types.ResumeListResp, error) {
	if !actor.IsAdmin() {
		return nil, errorx.Forbidden("Admin access required")
	}

	page, pageSize := pagination.Normalize(req.Page, req.PageSize)
	resumes, total, err := l.svcCtx.ResumesDao.FindPage(l.ctx, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]types.ResumeInfo, 0, len(resumes))
	for _, r := range resumes {
		list = append(list, toResumeInfo(r))
	}
	return &types.ResumeListResp{List: list, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update mutates a resume; owner or admin only. Others cannot learn the
// resume exists.
func (l *ResumeLogic) Update(actor token.Actor, req *types.ResumeUpdateReq) (*types.ResumeInfo, error) {
	resume, err := l.findVisible(actor, req.Id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	setIfPresent(fields, "title", req.Title)
	setIfPresent(fields, "summary", req.Summary)
	setIfPresent(fields, "skills", req.Skills)
	setIfPresent(fields, "experience", req.Experience)
	setIfPresent(fields, "education", req.Education)
	if len(fields) > 0 {
		if err := l.svcCtx.ResumesDao.Update(l.ctx, resume.Id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := l.svcCtx.ResumesDao.FindOneById(l.ctx, resume.Id)
	if err != nil {
		return nil, err
	}
	info := toResumeInfo(updated)
	return &info, nil
}

// Delete removes a resume; owner or admin only.
func (l *ResumeLogic) Delete(actor token.Actor, req *types.ResumeIdReq) error {
	resume, err := l.findVisible(actor, req.Id)
	if err != nil {
		return err
	}
	return l.svcCtx.ResumesDao.Delete(l.ctx, resume.Id)
}

func (l *ResumeLogic) findVisible(actor token.Actor, id int64) (*model.Resumes, error) {
	resume, err := l.svcCtx.ResumesDao.FindOneById(l.ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("resume not found")
		}
		return nil, err
	}
	if !authz.CanMutate(actor, resume.UserId) {
		return nil, errorx.NotFound("resume not found")
	}
	return resume, nil
}

func setIfPresent(fields map[string]any, column, value string) {
	if value != "" {
		fields[column] = value
	}
}

func toResumeInfo(resume *model.Resumes) types.ResumeInfo {
	return types.ResumeInfo{
		Id:         resume.Id,
		UserId:     resume.UserId,
		Title:      resume.Title,
		Summary:    resume.Summary,
		Skills:     resume.Skills,
		Experience: resume.Experience,
		Education:  resume.Education,
		CreatedAt:  resume.CreatedAt.Unix(),
		UpdatedAt:  resume.UpdatedAt.Unix(),
	}
}
