package handler

import (
	"net/http"

	"chainboard/internal/errorx"
	"chainboard/internal/token"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// parse fills req from the request, mapping malformed input to BadRequest so
// the envelope error handler renders it with the right status.
func parse(r *http.Request, req any) error {
	if err := httpx.Parse(r, req); err != nil {
		return errorx.New(http.StatusBadRequest, err.Error())
	}
	return nil
}

// actorOf extracts the authenticated caller the JWT middleware injected into
// the request context.
func actorOf(r *http.Request) (token.Actor, error) {
	actor, err := token.ActorFromContext(r.Context())
	if err != nil {
		return token.Actor{}, errorx.Unauthorized("invalid session")
	}
	return actor, nil
}
