package domain

import "time"

type User struct {
	ID        int64
	Email     string
	FullName  string
	RoleID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role struct {
	ID   int64
	Name string
}

// RoleChangeProposal is a staged, not yet applied role escalation for a
// target user. It lives in the staged-change store under the acting
// administrator's id until confirmed or discarded.
type RoleChangeProposal struct {
	Nonce        string    `json:"nonce"`
	TargetUserID int64     `json:"target_user_id"`
	RoleID       int64     `json:"role_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	StagedAt     time.Time `json:"staged_at"`
}
