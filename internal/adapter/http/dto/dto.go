package dto

import "time"

// CreateUserRequest is the request body for user registration.
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Surname   string `json:"surname" binding:"required,min=1,max=100"`
	PublicKey string `json:"public_key" binding:"required"`
}

// UserPayload is the user object embedded in a registration response.
type UserPayload struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Token     string `json:"token"`
	PublicKey string `json:"public_key"`
}

// CreateUserResponse is the response body for successful registration.
type CreateUserResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

// CheckUserResponse is the response body for a wallet lookup. The
// nullable fields stay null unless Status is "Success"; callers check
// the status field, not the HTTP code.
type CheckUserResponse struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Token   *string `json:"token"`
	Status  string  `json:"status"`
}

// LessonRecordPayload is one completed-lesson record.
type LessonRecordPayload struct {
	ID           int64     `json:"id"`
	CreationTime time.Time `json:"creation_time"`
	Lesson       []string  `json:"lesson"`
}

// CompletedLessonsResponse is the response body for the lesson history
// query. Lessons come back in ascending creation-time order.
type CompletedLessonsResponse struct {
	Status      string                `json:"status"`
	PublicKey   string                `json:"public_key"`
	LessonCount int                   `json:"lesson_count"`
	Lessons     []LessonRecordPayload `json:"lessons"`
}

// HealthResponse reports store connectivity and version.
type HealthResponse struct {
	Status        string `json:"status"`
	ServerVersion string `json:"server_version,omitempty"`
	Error         string `json:"error,omitempty"`
}
