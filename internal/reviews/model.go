package reviews

import "time"

// Review is one flat review of a movie identity. The (Source, ExternalID)
// pair links it to a Movie without owning it: a review outlives a missing
// movie record.
type Review struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Source     string    `gorm:"size:32;not null;index:idx_reviews_movie" json:"source"`
	ExternalID string    `gorm:"size:64;not null;index:idx_reviews_movie" json:"externalId"`
	Text       string    `gorm:"not null" json:"text"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;not null" json:"email"`
	Replies    []Reply   `gorm:"foreignKey:ReviewID" json:"replies"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Reply is owned exclusively by its parent review and is only ever appended
// through the parent's id.
type Reply struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ReviewID  string    `gorm:"size:36;not null;index" json:"-"`
	Text      string    `gorm:"not null" json:"text"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
