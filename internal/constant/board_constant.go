package constant

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Job types.
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Job statuses.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Application statuses.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Pagination bounds applied to every list endpoint.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)
