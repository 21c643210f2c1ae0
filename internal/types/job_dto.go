package types

// JobCreateReq defines the request body for posting a job.
type JobCreateReq struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,optional"`
	Description string `json:"description,optional"`
	SalaryRange string `json:"salaryRange,optional"`
	JobType     string `json:"jobType,options=full_time|part_time|contract|internship,default=full_time"`
	Category    string `json:"category,optional"`
}

// JobUpdateReq updates an existing posting. Empty fields are left unchanged.
type JobUpdateReq struct {
	Id          int64  `path:"id"`
	Title       string `json:"title,optional"`
	Company     string `json:"company,optional"`
	Location    string `json:"location,optional"`
	Description string `json:"description,optional"`
	SalaryRange string `json:"salaryRange,optional"`
	JobType     string `json:"jobType,options=full_time|part_time|contract|internship,optional"`
	Category    string `json:"category,optional"`
	Status      string `json:"status,options=open|closed,optional"`
}

// JobIdReq addresses a single posting.
type JobIdReq struct {
	Id int64 `path:"id"`
}

// JobListReq filters the public job listing.
type JobListReq struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
	Keyword  string `form:"keyword,optional"`
	Location string `form:"location,optional"`
	JobType  string `form:"jobType,optional"`
	Category string `form:"category,optional"`
	Status   string `form:"status,default=open"`
}

// JobInfo is the public view of a posting.
type JobInfo struct {
	Id          int64  `json:"id"`
	UserId      int64  `json:"userId"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	SalaryRange string `json:"salaryRange,omitempty"`
	JobType     string `json:"jobType"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// JobListResp is a page of postings.
type JobListResp struct {
	List     []JobInfo `json:"list"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}
