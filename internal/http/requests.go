package http

// Request bodies accepted by the write endpoints. Limits mirror the
// column sizes in internal/entities.

// AddAuthorRequest is the body of POST /add_author.
type AddAuthorRequest struct {
	AuthorName string `json:"author_name" binding:"required,max=50"`
	Biography  string `json:"biography" binding:"max=100"`
	Email      string `json:"email" binding:"max=60"`
}

// AddBookRequest is the body of POST /add_book. The author fields are
// only used when the author does not exist yet.
type AddBookRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Biography   string `json:"biography" binding:"max=100"`
	Email       string `json:"email" binding:"max=60"`
	BookName    string `json:"book_name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=100"`
}

// EditAuthorRequest is the body of PUT /edit_author/:name.
// Omitted or null fields are left unchanged.
type EditAuthorRequest struct {
	AuthorName     *string `json:"author_name" binding:"omitempty,max=50"`
	ShortBiography *string `json:"short_biography" binding:"omitempty,max=100"`
	Email          *string `json:"email" binding:"omitempty,max=60"`
}
