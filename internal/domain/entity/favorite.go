package entity

// FavoriteKind selects one of the favorite collections of an account.
type FavoriteKind string

const (
	// FavoriteLines is the favorite_lines collection.
	FavoriteLines FavoriteKind = "lines"
	// FavoriteStops is the favorite_stops collection.
	FavoriteStops FavoriteKind = "stops"
)

// IsValid checks if the FavoriteKind is a known collection.
func (k FavoriteKind) IsValid() bool {
	return k == FavoriteLines || k == FavoriteStops
}

// Field returns the document field holding the collection.
func (k FavoriteKind) Field() string {
	if k == FavoriteStops {
		return "favorite_stops"
	}

	return "favorite_lines"
}
