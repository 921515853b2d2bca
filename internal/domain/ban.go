package domain

import "time"

// Ban marks a user as blocked; presence of a row means banned
type Ban struct {
	UserID   int64
	Reason   string
	BannedAt time.Time
}
