package handler

import (
	"net/http"

	"chainboard/internal/logic/application"
	"chainboard/internal/result"
	"chainboard/internal/svc"
	"chainboard/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ApplicationCreateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ApplicationCreateReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := application.NewApplicationLogic(r.Context(), svcCtx)
		resp, err := l.Create(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func ApplicationListMineHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ApplicationListReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := application.NewApplicationLogic(r.Context(), svcCtx)
		resp, err := l.ListMine(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func ApplicationsByJobHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ApplicationsByJobReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := application.NewApplicationLogic(r.Context(), svcCtx)
		resp, err := l.ListByJob(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func ApplicationGetHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ApplicationIdReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := application.NewApplicationLogic(r.Context(), svcCtx)
		resp, err := l.Get(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func ApplicationStatusHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.ApplicationStatusReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := application.NewApplicationLogic(r.Context(), svcCtx)
		resp, err := l.UpdateStatus(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}
