package handler

import (
	"net/http"

	"chainboard/internal/logic/job"
	"chainboard/internal/result"
	"chainboard/internal/svc"
	"chainboard/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func JobCreateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.JobCreateReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := job.NewJobLogic(r.Context(), svcCtx)
		resp, err := l.Create(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func JobListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.JobListReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := job.NewJobLogic(r.Context(), svcCtx)
		resp, err := l.List(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func JobGetHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.JobIdReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := job.NewJobLogic(r.Context(), svcCtx)
		resp, err := l.Get(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func JobUpdateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.JobUpdateReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := job.NewJobLogic(r.Context(), svcCtx)
		resp, err := l.Update(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func JobDeleteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.JobIdReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := job.NewJobLogic(r.Context(), svcCtx)
		if err := l.Delete(actor, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, nil)
		}
	}
}
