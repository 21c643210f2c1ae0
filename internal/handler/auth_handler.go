package handler

import (
	"net/http"

	"chainboard/internal/logic/auth"
	"chainboard/internal/result"
	"chainboard/internal/svc"
	"chainboard/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// RegisterHandler creates an email/password account.
func RegisterHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RegisterReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := auth.NewAuthLogic(r.Context(), svcCtx)
		resp, err := l.Register(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

// LoginHandler resolves an email/password pair into a session.
func LoginHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LoginReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := auth.NewAuthLogic(r.Context(), svcCtx)
		resp, err := l.Login(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

// NonceHandler issues a single-use wallet login challenge.
func NonceHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.NonceReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := auth.NewAuthLogic(r.Context(), svcCtx)
		resp, err := l.Nonce(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

// WalletLoginHandler resolves a wallet-signature identity into a session,
// auto-registering unseen addresses.
func WalletLoginHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.WalletLoginReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := auth.NewAuthLogic(r.Context(), svcCtx)
		resp, err := l.WalletLogin(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}

// MeHandler returns the current actor's public identity.
func MeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorOf(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := auth.NewAuthLogic(r.Context(), svcCtx)
		resp, err := l.Me(actor.UserId)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			result.OkJson(w, r, resp)
		}
	}
}
