package application

import (
	"context"
	"testing"

	"chainboard/internal/constant"
	"chainboard/internal/errorx"
	"chainboard/internal/model"
	"chainboard/internal/model/modeltest"
	"chainboard/internal/svc"
	"chainboard/internal/token"
	"chainboard/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerId     = int64(1)
	applicantId = int64(2)
	strangerId  = int64(3)
)

func newLogic(t *testing.T) (*ApplicationLogic, int64) {
	t.Helper()
	jobs := modeltest.NewJobs()
	job := &model.Jobs{UserId: ownerId, Title: "Rust Auditor", Status: constant.JobStatusOpen}
	require.NoError(t, jobs.Insert(context.Background(), job))

	l := NewApplicationLogic(context.Background(), &svc.ServiceContext{
		JobsDao:         jobs,
		ApplicationsDao: modeltest.NewApplications(),
	})
	return l, job.Id
}

func actor(id int64) token.Actor {
	return token.Actor{UserId: id, Role: constant.RoleUser}
}

func TestCreateRules(t *testing.T) {
	l, jobId := newLogic(t)

	_, err := l.Create(actor(applicantId), &types.ApplicationCreateReq{JobId: 404})
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "job not found", ce.Msg)

	_, err = l.Create(actor(ownerId), &types.ApplicationCreateReq{JobId: jobId})
	ce, ok = errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "You cannot apply to your own job", ce.Msg)

	info, err := l.Create(actor(applicantId), &types.ApplicationCreateReq{JobId: jobId, CoverLetter: "hi"})
	require.NoError(t, err)
	assert.Equal(t, constant.ApplicationStatusPending, info.Status)

	_, err = l.Create(actor(applicantId), &types.ApplicationCreateReq{JobId: jobId})
	ce, ok = errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "You have already applied to this job", ce.Msg)
}

func TestGetHidesFromOutsiders(t *testing.T) {
	l, jobId := newLogic(t)
	info, err := l.Create(actor(applicantId), &types.ApplicationCreateReq{JobId: jobId})
	require.NoError(t, err)

	// Both participants see it.
	for _, id := range []int64{applicantId, ownerId} {
		got, err := l.Get(actor(id), &types.ApplicationIdReq{Id: info.Id})
		require.NoError(t, err)
		assert.Equal(t, info.Id, got.Id)
	}

	// An outsider gets the same answer as for a missing row.
	_, err = l.Get(actor(strangerId), &types.ApplicationIdReq{Id: info.Id})
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "application not found", ce.Msg)

	_, err = l.Get(actor(strangerId), &types.ApplicationIdReq{Id: 404})
	ce2, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, ce.Msg, ce2.Msg)

	got, err := l.Get(token.Actor{UserId: strangerId, Role: constant.RoleAdmin}, &types.ApplicationIdReq{Id: info.Id})
	require.NoError(t, err)
	assert.Equal(t, info.Id, got.Id)
}

func TestUpdateStatus(t *testing.T) {
	l, jobId := newLogic(t)
	info, err := l.Create(actor(applicantId), &types.ApplicationCreateReq{JobId: jobId})
	require.NoError(t, err)

	// The applicant cannot review their own application.
	_, err = l.UpdateStatus(actor(applicantId), &types.ApplicationStatusReq{Id: info.Id, Status: constant.ApplicationStatusAccepted})
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "application not found", ce.Msg)

	got, err := l.UpdateStatus(actor(ownerId), &types.ApplicationStatusReq{Id: info.Id, Status: constant.ApplicationStatusReviewed})
	require.NoError(t, err)
	assert.Equal(t, constant.ApplicationStatusReviewed, got.Status)
}

func TestListByJobOwnerOnly(t *testing.T) {
	l, jobId := newLogic(t)
	_, err := l.Create(actor(applicantId), &types.ApplicationCreateReq{JobId: jobId})
	require.NoError(t, err)

	_, err = l.ListByJob(actor(strangerId), &types.ApplicationsByJobReq{JobId: jobId})
	ce, ok := errorx.From(err)
	require.True(t, ok)
	assert.Equal(t, "Unauthorized to view applications for this job", ce.Msg)

	resp, err := l.ListByJob(actor(ownerId), &types.ApplicationsByJobReq{JobId: jobId})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Total)

	mine, err := l.ListMine(actor(applicantId), &types.ApplicationListReq{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, mine.Total)
	assert.Len(t, mine.List, 1)
}
