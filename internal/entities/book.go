package entities

import "time"

type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Caption   string    `gorm:"not null;size:512" json:"caption"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Rated     bool      `gorm:"index" json:"rated"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// NewBook returns an unsaved book. The ID is assigned by the repository on first save.
func NewBook(caption, comment string, rated bool) Book {
	return Book{
		Caption: caption,
		Comment: comment,
		Rated:   rated,
	}
}

// IsPersisted reports whether the book has been assigned an ID.
func (b Book) IsPersisted() bool {
	return b.ID != 0
}

// SameAs compares identity and content, ignoring timestamps.
func (b Book) SameAs(other Book) bool {
	return b.ID == other.ID &&
		b.Caption == other.Caption &&
		b.Comment == other.Comment &&
		b.Rated == other.Rated
}
