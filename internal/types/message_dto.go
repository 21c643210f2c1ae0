package types

// MessageSendReq sends a message, optionally tied to a job posting.
type MessageSendReq struct {
	ReceiverId int64  `json:"receiverId"`
	Content    string `json:"content"`
	JobId      int64  `json:"jobId,optional"`
}

// MessageIdReq addresses a single message.
type MessageIdReq struct {
	Id int64 `path:"id"`
}

// MessageListReq pages the actor's conversations.
type MessageListReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// MessageInfo is the participant view of a message.
type MessageInfo struct {
	Id         int64  `json:"id"`
	SenderId   int64  `json:"senderId"`
	ReceiverId int64  `json:"receiverId"`
	JobId      int64  `json:"jobId,omitempty"`
	Content    string `json:"content"`
	IsRead     bool   `json:"isRead"`
	CreatedAt  int64  `json:"createdAt"`
}

// MessageListResp is a page of messages.
type MessageListResp struct {
	List     []MessageInfo `json:"list"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}
