// Package profile defines the read model the galaxy engine consumes and the
// stores that serve it.
//
// The engine only needs three things from the application's user data: how
// many tiles there are, their order, and the detail record of one tile when
// it is spotlighted or hovered. [Store] captures exactly that. Stores are
// safe for concurrent use; lookups are idempotent and may be cached by id
// (see [CachedStore]).
package profile

import (
	"context"
	"time"
)

// Item is one tile of the galaxy: an opaque id plus what a tile displays.
// Items are ordered by creation time.
type Item struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// Detail is the record shown in a spotlight or hover tooltip.
type Detail struct {
	Item     `bson:",inline"`
	Bio      string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Location string   `json:"location,omitempty" bson:"location,omitempty"`
	Links    []string `json:"links,omitempty" bson:"links,omitempty"`
}

// Store is the read interface of the profile collection.
type Store interface {
	// Count returns the number of profiles.
	Count(ctx context.Context) (int, error)

	// Items returns every profile in creation order.
	Items(ctx context.Context) ([]Item, error)

	// Detail returns the detail record of id, or nil with a nil error when
	// no such profile exists.
	Detail(ctx context.Context, id string) (*Detail, error)
}

// Writer adds profiles to a store. It is used by seeding and the preview's
// synthetic growth.
type Writer interface {
	Insert(ctx context.Context, details []Detail) error
}
