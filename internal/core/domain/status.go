package domain

// ResultStatus is the domain-level outcome carried in the status field
// of lookup responses. These are "soft" outcomes: they travel as normal
// 200 responses, and callers inspect the status field rather than the
// HTTP status code.
type ResultStatus string

const (
	StatusSuccess             ResultStatus = "Success"
	StatusNotFound            ResultStatus = "NotFound"
	StatusUserNotFound        ResultStatus = "UserNotFound"
	StatusInvalidWalletFormat ResultStatus = "InvalidWalletFormat"
)
