package job

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

type JobLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewJobLogic(ctx context.Context, svcCtx *svc.ServiceContext) *JobLogic {
	return &JobLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Create posts a new job owned by the actor.
func (l *JobLogic) Create(actor token.Actor, req *types.JobCreateReq) (*types.JobInfo, error) {
	job := &model.Jobs{
		UserId:      actor.UserId,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		SalaryRange: req.SalaryRange,
		JobType:     req.JobType,
		Category:    req.Category,
		Status:      constant.JobStatusOpen,
	}
	if err := l.svcCtx.JobsDao.Insert(l.ctx, job); err != nil {
		return nil, err
	}
	info := toJobInfo(job)
	return &info, nil
}

// List returns a filtered page of postings. Public.
func (l *JobLogic) List(req *types.JobListReq) (*types.JobListResp, error) {
	page, pageSize := pagination.Normalize(req.Page, req.PageSize)

	filter := model.JobsFilter{
		Keyword:  req.Keyword,
		Location: req.Location,
		JobType:  req.JobType,
		Category: req.Category,
		Status:   req.Status,
	}
	jobs, total, err := l.svcCtx.JobsDao.FindPage(l.ctx, filter, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]types.JobInfo, 0, len(jobs))
	for _, j := range jobs {
		list = append(list, toJobInfo(j))
	}
	return &types.JobListResp{List: list, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get fetches one posting. Public.
func (l *JobLogic) Get(req *types.JobIdReq) (*types.JobInfo, error) {
	job, err := l.findJob(req.Id)
	if err != nil {
		return nil, err
	}
	info := toJobInfo(job)
	return &info, nil
}

// Update mutates a posting; owner or admin only.
func (l *JobLogic) Update(actor token.Actor, req *types.JobUpdateReq) (*types.JobInfo, error) {
	job, err := l.findJob(req.Id)
	if err != nil {
		return nil, err
	}
	if !authz.CanMutate(actor, job.UserId) {
		return nil, errorx.Forbidden("Unauthorized to update this job")
	}

	fields := map[string]any{}
	setIfPresent(fields, "title", req.Title)
	setIfPresent(fields, "company", req.Company)
	setIfPresent(fields, "location", req.Location)
	setIfPresent(fields, "description", req.Description)
	setIfPresent(fields, "salary_range", req.SalaryRange)
	setIfPresent(fields, "job_type", req.JobType)
	setIfPresent(fields, "category", req.Category)
	setIfPresent(fields, "status", req.Status)
	if len(fields) > 0 {
		if err := l.svcCtx.JobsDao.Update(l.ctx, job.Id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := l.findJob(req.Id)
	if err != nil {
		return nil, err
	}
	info := toJobInfo(updated)
	return &info, nil
}

// Delete removes a posting; owner or admin only.
func (l *JobLogic) Delete(actor token.Actor, req *types.JobIdReq) error {
	job, err := l.findJob(req.Id)
	if err != nil {
		return err
	}
	if !authz.CanMutate(actor, job.UserId) {
		return errorx.Forbidden("Unauthorized to delete this job")
	}
	return l.svcCtx.JobsDao.Delete(l.ctx, job.Id)
}

func (l *JobLogic) findJob(id int64) (*model.Jobs, error) {
	job, err := l.svcCtx.JobsDao.FindOneById(l.ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("job not found")
		}
		return nil, err
	}
	return job, nil
}

func setIfPresent(fields map[string]any, column, value string) {
	if value != "" {
		fields[column] = value
	}
}

func toJobInfo(job *model.Jobs) types.JobInfo {
	return types.JobInfo{
		Id:          job.Id,
		UserId:      job.UserId,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
		SalaryRange: job.SalaryRange,
		JobType:     job.JobType,
		Category:    job.Category,
		Status:      job.Status,
		CreatedAt:   job.CreatedAt.Unix(),
		UpdatedAt:   job.UpdatedAt.Unix(),
	}
}
