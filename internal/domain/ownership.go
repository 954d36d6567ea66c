package domain

import (
	"encoding/json"
	"fmt"
)

// OwnerKind tags which kind of holder an item belongs to.
type OwnerKind string

const (
	OwnerCharacter OwnerKind = "character"
	OwnerNPC       OwnerKind = "npc"
	OwnerRoom      OwnerKind = "room"
	OwnerContainer OwnerKind = "container"
)

// Owner says where an item is: carried by a character or NPC, lying in a room,
// or inside another item. Exactly one holder can be set. The zero Owner is an
// unowned item.
type Owner struct {
	kind OwnerKind
	id   int64
}

func OwnedByCharacter(characterID int64) Owner { return Owner{kind: OwnerCharacter, id: characterID} }
func OwnedByNPC(npcID int64) Owner             { return Owner{kind: OwnerNPC, id: npcID} }
func InRoom(roomID int64) Owner                { return Owner{kind: OwnerRoom, id: roomID} }
func InContainer(itemID int64) Owner           { return Owner{kind: OwnerContainer, id: itemID} }

// ParseOwner builds an Owner from its stored kind and id.
// An empty kind yields the zero Owner.
func ParseOwner(kind string, id int64) (Owner, error) {
	switch OwnerKind(kind) {
	case "":
		return Owner{}, nil
	case OwnerCharacter, OwnerNPC, OwnerRoom, OwnerContainer:
		if id <= 0 {
			return Owner{}, fmt.Errorf("%w: %s id %d", ErrInvalidOwner, kind, id)
		}
		return Owner{kind: OwnerKind(kind), id: id}, nil
	default:
		return Owner{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidOwner, kind)
	}
}

func (o Owner) Kind() OwnerKind { return o.kind }
func (o Owner) ID() int64       { return o.id }
func (o Owner) IsZero() bool    { return o.kind == "" }

// Is reports whether o is held by the given kind.
func (o Owner) Is(kind OwnerKind) bool { return o.kind == kind }

// ContainerID returns the containing item's id when the owner is a container.
func (o Owner) ContainerID() (int64, bool) {
	if o.kind != OwnerContainer {
		return 0, false
	}
	return o.id, true
}

func (o Owner) String() string {
	if o.IsZero() {
		return "unowned"
	}
	return fmt.Sprintf("%s:%d", o.kind, o.id)
}

type ownerJSON struct {
	Kind OwnerKind `json:"kind"`
	ID   int64     `json:"id"`
}

func (o Owner) MarshalJSON() ([]byte, error) {
	if o.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ownerJSON{Kind: o.kind, ID: o.id})
}

func (o *Owner) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Owner{}
		return nil
	}
	var raw ownerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseOwner(string(raw.Kind), raw.ID)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
