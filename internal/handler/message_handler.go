package handler

import (
	"net/http"

	"chainboard/internal/logic/message"
	"chainboard/internal/result"
	"chainboard/internal/svc"
	"chainboard/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func MessageSendHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.MessageSendReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := message.NewMessageLogic(r.Context(), svcCtx)
		resp, err := l.Send(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func MessageListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.MessageListReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := message.NewMessageLogic(r.Context(), svcCtx)
		resp, err := l.List(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func MessageGetHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.MessageIdReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := message.NewMessageLogic(r.Context(), svcCtx)
		resp, err := l.Get(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

func MessageMarkReadHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		var req types.MessageIdReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := message.NewMessageLogic(r.Context(), svcCtx)
		resp, err := l.MarkRead(actor, &req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}
