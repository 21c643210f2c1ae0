package types

// ResumeCreateReq creates the actor's resume. One per user.
type ResumeCreateReq struct {
	Title      string `json:"title"`
	Summary    string `json:"summary,optional"`
	Skills     string `json:"skills,optional"`
	Experience string `json:"experience,optional"`
	Education  string `json:"education,optional"`
}

// ResumeUpdateReq updates a resume. Empty fields are left unchanged.
type ResumeUpdateReq struct {
	Id         int64  `path:"id"`
	Title      string `json:"title,optional"`
	Summary    string `json:"summary,optional"`
	Skills     string `json:"skills,optional"`
	Experience string `json:"experience,optional"`
	Education  string `json:"education,optional"`
}

// ResumeIdReq addresses a single resume.
type ResumeIdReq struct {
	Id int64 `path:"id"`
}

// ResumeListReq pages the admin-only resume listing.
type ResumeListReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// ResumeInfo is the owner/admin view of a resume.
type ResumeInfo struct {
	Id         int64  `json:"id"`
	UserId     int64  `json:"userId"`
	Title      string `json:"title"`
	Summary    string `json:"summary,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

// ResumeListResp is a page of resumes.
type ResumeListResp struct {
	List     []ResumeInfo `json:"list"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}
