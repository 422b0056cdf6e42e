// Package interfaces documents the core abstractions used throughout the application.
//
// # Data Access Interfaces
//
//   - AuthorStore: add, look up and edit authors (internal/http/stores.go)
//   - BookStore: add and list books (internal/http/stores.go)
//   - CatalogStore: both of the above, implemented by catalog.Repository
//   - StoreProbe: store liveness and table presence for /health (internal/http/health.go)
//
// # Adding a Store Implementation
//
//  1. Implement the methods of http.CatalogStore
//  2. Return entities.ErrAuthorNotFound, entities.ErrBookNotFound and
//     entities.ErrAuthorExists (wrapping is fine) so controllers can map
//     them to 404 and 409
//  3. Add a compile-time check to checks.go
package interfaces
