// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType classifies an account. The value is carried in the access token
// and drives the admin override in the ownership checks.
type UserType string

const (
	UserTypeVisitor   UserType = "visitor"
	UserTypeOrganiser UserType = "organiser"
	UserTypeAdmin     UserType = "admin"
)

// Valid reports whether the type is one of the three known user types.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeVisitor, UserTypeOrganiser, UserTypeAdmin:
		return true
	}

	return false
}

// CollectionKind names one of the four pujo-reference lists a user owns.
type CollectionKind string

const (
	CollectionFavorites    CollectionKind = "favorites"
	CollectionWishlist     CollectionKind = "wishlist"
	CollectionSaves        CollectionKind = "saves"
	CollectionPandalVisits CollectionKind = "pandal_visits"
)

// CollectionKinds lists every valid collection in a stable order.
var CollectionKinds = []CollectionKind{
	CollectionFavorites,
	CollectionWishlist,
	CollectionSaves,
	CollectionPandalVisits,
}

// Valid reports whether the kind is one of the four known collections.
func (k CollectionKind) Valid() bool {
	switch k {
	case CollectionFavorites, CollectionWishlist, CollectionSaves, CollectionPandalVisits:
		return true
	}

	return false
}

// User is the core account entity. The four collection slices hold ordered
// pujo references; a pujo appears at most once per collection.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	UserType     UserType
	Name         string
	Phone        string
	Favorites    []uuid.UUID
	Wishlist     []uuid.UUID
	Saves        []uuid.UUID
	PandalVisits []uuid.UUID
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Collection returns the named collection slice.
func (u *User) Collection(kind CollectionKind) []uuid.UUID {
	switch kind {
	case CollectionFavorites:
		return u.Favorites
	case CollectionWishlist:
		return u.Wishlist
	case CollectionSaves:
		return u.Saves
	case CollectionPandalVisits:
		return u.PandalVisits
	}

	return nil
}
