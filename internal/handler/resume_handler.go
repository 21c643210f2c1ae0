package handler

import (
	"net/http"

	"chainboard/internal/logic/resume"
	"chainboard/internal/result"
	"chainboard/internal/svc"
	"chainboard/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ResumeCreateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ResumeCreateReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := resume.NewResumeLogic(r.Context(), svcCtx)
		resp, err := l.Create(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func ResumeGetMineHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := resume.NewResumeLogic(r.Context(), svcCtx)
		resp, err := l.GetMine(actor)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func ResumeListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ResumeListReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := resume.NewResumeLogic(r.Context(), svcCtx)
		resp, err := l.List(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func ResumeUpdateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ResumeUpdateReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := resume.NewResumeLogic(r.Context(), svcCtx)
		resp, err := l.Update(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func ResumeDeleteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ResumeIdReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := resume.NewResumeLogic(r.Context(), svcCtx)
		if err := l.Delete(actor, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, nil)
		}
	}
}
