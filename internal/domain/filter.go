package domain

// BookFilter contains filtering/pagination parameters for registry listings.
type BookFilter struct {
	Search *string
	Genre  *string
	Limit  int
	Offset int
}
