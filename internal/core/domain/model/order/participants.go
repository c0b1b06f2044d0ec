package order

import (
	"fmt"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/errs"
)

// Slot names a production station that can be assigned to a specific user.
type Slot int

const (
	// NoSlot is used by rules that do not look at assignments.
	NoSlot Slot = iota
	SlotDie
	SlotDesigner
	SlotMilling
)

var slotNames = map[Slot]string{
	SlotDie:      "dado",
	SlotDesigner: "disenador",
	SlotMilling:  "fresadora",
}

// slotStages is the status at which each station works on the order.
var slotStages = map[Slot]Status{
	SlotDie:      Die,
	SlotDesigner: Design,
	SlotMilling:  Milling,
}

// ParseSlot accepts the backend field names: dado, disenador, fresadora.
func ParseSlot(name string) (Slot, error) {
	for slot, n := range slotNames {
		if n == name {
			return slot, nil
		}
	}
	return NoSlot, errs.NewValueIsInvalidErrorWithCause("slot", fmt.Errorf("%q is not a station", name))
}

func (s Slot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return "none"
}

// Stage returns the pipeline status worked by the station.
func (s Slot) Stage() Status {
	return slotStages[s]
}

// Participants holds the optional per-station assignees of an order.
// A nil entry means the station is unassigned and any user of that role
// may claim it.
type Participants struct {
	die      *kernel.ID
	designer *kernel.ID
	milling  *kernel.ID
}

// NewParticipants builds an assignment set; nil means unassigned.
func NewParticipants(die, designer, milling *kernel.ID) Participants {
	return Participants{
		die:      copyID(die),
		designer: copyID(designer),
		milling:  copyID(milling),
	}
}

// Get returns the assignee of a slot, or nil when it is unset.
func (p Participants) Get(slot Slot) *kernel.ID {
	switch slot {
	case SlotDie:
		return copyID(p.die)
	case SlotDesigner:
		return copyID(p.designer)
	case SlotMilling:
		return copyID(p.milling)
	default:
		return nil
	}
}

// IsUnsetOrAssignedTo is the optimistic claiming rule: an unassigned station
// is open to anyone with the role, an assigned one only to its assignee.
func (p Participants) IsUnsetOrAssignedTo(slot Slot, userID kernel.ID) bool {
	assignee := p.Get(slot)
	return assignee == nil || assignee.IsEqual(userID)
}

// With returns a copy of p with slot assigned to userID.
func (p Participants) With(slot Slot, userID kernel.ID) Participants {
	id := userID
	switch slot {
	case SlotDie:
		p.die = &id
	case SlotDesigner:
		p.designer = &id
	case SlotMilling:
		p.milling = &id
	}
	return p
}

func copyID(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
