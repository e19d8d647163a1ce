package domain

import "time"

// LessonRecord is one row of a user's completed-lesson history. The
// Lessons payload is an opaque list of completed-lesson identifiers,
// stored as JSON. A fresh user gets one record with an empty list at
// registration time.
type LessonRecord struct {
	ID           int64     `json:"id"`
	WalletCode   string    `json:"wallet_code"`
	CreationTime time.Time `json:"creation_time"`
	Lessons      []string  `json:"lesson"`
}

// NewInitialLessonRecord builds the empty record inserted alongside a
// freshly registered user.
func NewInitialLessonRecord(walletCode string, now time.Time) *LessonRecord {
	return &LessonRecord{
		WalletCode:   walletCode,
		CreationTime: now,
		Lessons:      []string{},
	}
}
