package item

import "github.com/google/uuid"

// Drop is a single item instance dropped on the battlefield during an
// encounter: a disarmed weapon or monster loot. Drops are collected by the
// combat session and returned to the player's inventory on victory.
type Drop struct {
	// InstanceID uniquely identifies this dropped instance.
	InstanceID string
	// ItemID names the item definition (weapon ID or loot ID).
	ItemID string
	// Name is the display name copied at drop time.
	Name string
	// SourceName records who dropped it, for the caller's renderer.
	SourceName string
}

// NewDrop creates a Drop with a fresh instance ID.
//
// Precondition: itemID must be non-empty.
func NewDrop(itemID, name, sourceName string) Drop {
	if itemID == "" {
		panic("item: NewDrop requires a non-empty item ID")
	}
	return Drop{
		InstanceID: uuid.New().String(),
		ItemID:     itemID,
		Name:       name,
		SourceName: sourceName,
	}
}
