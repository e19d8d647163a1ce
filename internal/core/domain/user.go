package domain

import (
	"strings"
	"time"
)

// User represents a registered learner, identified by a Stellar wallet
// address. The wallet code is immutable once created.
type User struct {
	WalletCode string    `json:"wallet_code"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	CreatedAt  time.Time `json:"created_at"`
}

// NormalizeWalletCode strips the leading/trailing whitespace that wallet
// codes routinely pick up from copy-paste. Every comparison and every
// stored value uses the normalized form.
func NormalizeWalletCode(code string) string {
	return strings.TrimSpace(code)
}
