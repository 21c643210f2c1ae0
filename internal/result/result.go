// Package result renders the {success, data, error} response envelope.
package result

import (
	"context"
	"net/http"

	"chainboard/internal/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

type Body struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// OkJson writes a success envelope around data.
func OkJson(w http.ResponseWriter, r *http.Request, data any) {
	httpx.OkJsonCtx(r.Context(), w, Body{Success: true, Data: data})
}

// ErrorHandler maps errors to status codes and failure envelopes. Install it
// once via httpx.SetErrorHandlerCtx. Unexpected errors are logged with their
// cause and rendered generically.
func ErrorHandler(ctx context.Context, err error) (int, any) {
	if ce, ok := errorx.From(err); ok {
		return ce.StatusCode, Body{Success: false, Error: ce.Msg}
	}
	logx.WithContext(ctx).Errorf("unhandled error: %v", err)
	return http.StatusInternalServerError, Body{Success: false, Error: "internal server error"}
}
