package watchlist

import "time"

// Item is one saved movie on a user's watchlist. A movie identity appears at
// most once per user.
type Item struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_watchlist_entry" json:"-"`
	Source     string    `gorm:"size:32;not null;uniqueIndex:idx_watchlist_entry" json:"source"`
	ExternalID string    `gorm:"size:64;not null;uniqueIndex:idx_watchlist_entry" json:"externalId"`
	Title      string    `gorm:"not null" json:"title"`
	Poster     string    `json:"poster"`
	CreatedAt  time.Time `json:"createdAt"`
}
