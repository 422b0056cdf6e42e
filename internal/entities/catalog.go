package entities

type Author struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	AuthorName     string `gorm:"uniqueIndex:idx_authors_author_name;size:50" json:"author_name"`
	ShortBiography string `gorm:"size:100" json:"-"` // never exposed over HTTP
	Email          string `gorm:"size:60" json:"email"`
	Books          []Book `gorm:"foreignKey:AuthorID" json:"-"`
}

type Book struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	AuthorID    uint    `gorm:"not null;index" json:"-"`
	Author      *Author `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	BookName    string  `gorm:"index;size:50" json:"book_name"`
	Description string  `gorm:"size:100" json:"description"`
}

// AuthorUpdate carries a partial author edit. Nil fields keep the stored value.
type AuthorUpdate struct {
	Name      *string
	Biography *string
	Email     *string
}
