package handler

import (
	"net/http"
	"time"

	"chainboard/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	// Public routes: auth entry points and the job board itself.
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/auth/register",
				Handler: RegisterHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/login",
				Handler: LoginHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/auth/nonce",
				Handler: NonceHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/wallet-login",
				Handler: WalletLoginHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/jobs",
				Handler: JobListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/jobs/:id",
				Handler: JobGetHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
		rest.WithTimeout(30000*time.Millisecond),
	)

	// Session-gated routes.
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/auth/me",
				Handler: MeHandler(serverCtx),
			},
			// --- Jobs ---
			{
				Method:  http.MethodPost,
				Path:    "/jobs",
				Handler: JobCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/jobs/:id",
				Handler: JobUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/jobs/:id",
				Handler: JobDeleteHandler(serverCtx),
			},
			// --- Applications ---
			{
				Method:  http.MethodPost,
				Path:    "/applications",
				Handler: ApplicationCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/applications/my",
				Handler: ApplicationListMineHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/applications/job/:jobId",
				Handler: ApplicationsByJobHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/applications/:id",
				Handler: ApplicationGetHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/applications/:id/status",
				Handler: ApplicationStatusHandler(serverCtx),
			},
			// --- Messages ---
			{
				Method:  http.MethodPost,
				Path:    "/messages",
				Handler: MessageSendHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/messages",
				Handler: MessageListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/messages/:id",
				Handler: MessageGetHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/messages/:id/read",
				Handler: MessageMarkReadHandler(serverCtx),
			},
			// --- Resumes ---
			{
				Method:  http.MethodPost,
				Path:    "/resumes",
				Handler: ResumeCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/resumes/me",
				Handler: ResumeGetMineHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/resumes",
				Handler: ResumeListHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/resumes/:id",
				Handler: ResumeUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/resumes/:id",
				Handler: ResumeDeleteHandler(serverCtx),
			},
			// --- Wallet profiles ---
			{
				Method:  http.MethodPost,
				Path:    "/wallet-profiles/link",
				Handler: WalletLinkHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/wallet-profiles",
				Handler: WalletProfileListHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/wallet-profiles/:id/primary",
				Handler: WalletProfileSetPrimaryHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/wallet-profiles/:id/refresh",
				Handler: WalletProfileRefreshHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/wallet-profiles/:id",
				Handler: WalletProfileDeleteHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
		rest.WithTimeout(30000*time.Millisecond),
		rest.WithJwt(serverCtx.Config.Auth.AccessSecret),
	)
}
