package types

// ApplicationCreateReq applies the actor to a job.
type ApplicationCreateReq struct {
	JobId       int64  `json:"jobId"`
	CoverLetter string `json:"coverLetter,optional"`
}

// ApplicationIdReq addresses a single application.
type ApplicationIdReq struct {
	Id int64 `path:"id"`
}

// ApplicationListReq pages the actor's own applications.
type ApplicationListReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// ApplicationsByJobReq pages the applications for one posting; restricted to
// the job owner and admins.
type ApplicationsByJobReq struct {
	JobId    int64 `path:"jobId"`
	Page     int   `form:"page,default=1"`
	PageSize int   `form:"pageSize,default=10"`
}

// ApplicationStatusReq moves an application through the review pipeline.
type ApplicationStatusReq struct {
	Id     int64  `path:"id"`
	Status string `json:"status,options=pending|reviewed|accepted|rejected"`
}

// ApplicationInfo is the view of an application returned to participants.
type ApplicationInfo struct {
	Id          int64  `json:"id"`
	JobId       int64  `json:"jobId"`
	UserId      int64  `json:"userId"`
	CoverLetter string `json:"coverLetter,omitempty"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"createdAt"`
}

// ApplicationListResp is a page of applications.
type ApplicationListResp struct {
	List     []ApplicationInfo `json:"list"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}
