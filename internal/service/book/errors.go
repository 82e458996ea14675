package book

import "errors"

// ErrCatalogBookNotFound indicates the external catalog has no volume with the requested id.
var ErrCatalogBookNotFound = errors.New("book not found in catalog")
