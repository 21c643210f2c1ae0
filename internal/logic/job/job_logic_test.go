package job

import (
	"context"
	"testing"

	"chainboard/internal/constant"
	"chainboard/internal/errorx"
	"chainboard/internal/model/modeltest"
	"chainboard/internal/svc"
	"chainboard/internal/token"
	"chainboard/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogic(t *testing.T) (*JobLogic, *modeltest.Jobs) {
	t.Helper()
	jobs := modeltest.NewJobs()
	return NewJobLogic(context.Background(), &svc.ServiceContext{JobsDao: jobs}), jobs
}

func postJob(t *testing.T, l *JobLogic, owner int64) *types.JobInfo {
	t.Helper()
	info, err := l.Create(token.Actor{UserId: owner, Role: constant.RoleUser}, &types.JobCreateReq{
		Title:       "Solidity Engineer",
		Company:     "Acme Chain",
		Location:    "Remote",
		Description: "Build audited contracts",
		JobType:     constant.JobTypeFullTime,
		Category:    "engineering",
	})
	require.NoError(t, err)
	return info
}

func TestCreateDefaultsToOpen(t *testing.T) {
	l, _ := newLogic(t)
	info := postJob(t, l, 1)
	assert.Equal(t, constant.JobStatusOpen, info.Status)
	assert.EqualValues(t, 1, info.UserId)
}

func TestGetUnknownJob(t *testing.T) {
	l, _ := newLogic(t)
	_, err := l.Get(&types.JobIdReq{Id: 99})
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "job not found", ce.Msg)
}

func TestUpdateOwnership(t *testing.T) {
	l, _ := newLogic(t)
	info := postJob(t, l, 1)

	_, err := l.Update(token.Actor{UserId: 2, Role: constant.RoleUser}, &types.JobUpdateReq{
		Id: info.Id, Title: "Hijacked",
	})
	require.Error(t, err)
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "Unauthorized to update this job", ce.Msg)

	// Owner can change a subset of fields; untouched fields survive.
	updated, err := l.Update(token.Actor{UserId: 1, Role: constant.RoleUser}, &types.JobUpdateReq{
		Id: info.Id, Status: constant.JobStatusClosed,
	})
	require.NoError(t, err)
	assert.Equal(t, constant.JobStatusClosed, updated.Status)
	assert.Equal(t, "Solidity Engineer", updated.Title)

	// Admin may touch anyone's posting.
	updated, err = l.Update(token.Actor{UserId: 9, Role: constant.RoleAdmin}, &types.JobUpdateReq{
		Id: info.Id, Title: "Senior Solidity Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Solidity Engineer", updated.Title)
}

func TestDeleteOwnership(t *testing.T) {
	l, jobs := newLogic(t)
	info := postJob(t, l, 1)

	err := l.Delete(token.Actor{UserId: 2, Role: constant.RoleUser}, &types.JobIdReq{Id: info.Id})
	require.Error(t, err)
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "Unauthorized to delete this job", ce.Msg)
	assert.Equal(t, 1, jobs.Count())

	require.NoError(t, l.Delete(token.Actor{UserId: 1, Role: constant.RoleUser}, &types.JobIdReq{Id: info.Id}))
	assert.Equal(t, 0, jobs.Count())
}

func TestListFiltersAndPaginates(t *testing.T) {
	l, _ := newLogic(t)
	for i := 0; i < 3; i++ {
		postJob(t, l, 1)
	}

	resp, err := l.List(&types.JobListReq{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, resp.Total)
	assert.Len(t, resp.List, 2)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PageSize)

	resp, err = l.List(&types.JobListReq{Location: "Berlin"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, resp.Total)

	// Out-of-range paging input falls back to defaults.
	resp, err = l.List(&types.JobListReq{Page: -1, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultPage, resp.Page)
	assert.Equal(t, constant.DefaultPageSize, resp.PageSize)
}
