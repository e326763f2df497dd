package constant

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type UserType string

const (
	UserTypeHelp    UserType = "help"
	UserTypeRequest UserType = "request"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusCanceled ReportStatus = "canceled"
)
