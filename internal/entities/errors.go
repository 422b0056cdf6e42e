package entities

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorExists   = errors.New("author already exists")
)
