package account

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// AccountStatus represents the status of an authentication account
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Account is an authentication record. Its id is never used as a foreign
// key by the marketplace aggregates; those reference profile ids resolved
// through the seeker/company repositories.
type Account struct {
	ID           kernel.AccountID `db:"id" json:"id"`
	Email        kernel.Email     `db:"email" json:"email"`
	Phone        kernel.Phone     `db:"phone" json:"phone,omitempty"`
	PasswordHash string           `db:"password_hash" json:"-"`
	Type         kernel.AccountType `db:"account_type" json:"account_type"`
	Status       AccountStatus    `db:"status" json:"status"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at" json:"updated_at"`
}

// IsActive checks if the account may authenticate
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}
