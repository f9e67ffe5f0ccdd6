package models

import "time"

// IdentityMapping links a ledger member to the chat user who votes for them.
type IdentityMapping struct {
	tableName struct{} `pg:"identity_mappings"`

	LedgerMemberID string    `json:"ledger_member_id" pg:",pk"`
	ChatUserID     string    `json:"chat_user_id" pg:",notnull"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at" pg:"default:now()"`
}
