// Package repo contains all persistence logic for the itinerary planner.
//
// Persistence is deliberately coarse: the whole saved-itinerary collection is
// one JSON value in one string-keyed slot, and the active language code is a
// second slot. Every mutation re-serializes the owning slot wholesale; there
// are no partial writes. Slots is the abstraction over where those two values
// live: a directory of files by default, or a Postgres table when a durable
// shared store is wanted.
package repo

import "context"

// Slot keys. The values match the original storage keys so existing data
// carries over.
const (
	SlotSavedTrips = "mon-itineraire-sauvegardes"
	SlotLanguage   = "jyvais-language"
)

// Slots reads and writes whole string values by key.
//
// Read reports ok=false for an absent key with no error; errors are reserved
// for I/O failures. Write replaces the value wholesale.
type Slots interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
}
