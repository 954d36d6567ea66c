package domain

import (
	"fmt"
	"time"
)

// MaxDurability is the bound template's effective durability.
func (i *ItemInstance) MaxDurability() int {
	if i.template == nil {
		return 0
	}
	return i.template.EffectiveDurability()
}

// Durability returns current durability; an uninitialized value reads as full.
func (i *ItemInstance) Durability() int {
	if i.CurrentDurability == nil {
		return i.MaxDurability()
	}
	return *i.CurrentDurability
}

// IsBroken reports whether durability has reached zero.
func (i *ItemInstance) IsBroken() bool {
	return i.CurrentDurability != nil && *i.CurrentDurability <= 0
}

// Damage removes amount durability, floored at zero, and recomputes condition.
// It reports whether the item is now broken. A broken item stays as it is
// until repaired.
func (i *ItemInstance) Damage(amount int) (bool, error) {
	if i.template == nil {
		return false, fmt.Errorf("%w: item %d", ErrTemplateNotBound, i.ID)
	}
	if amount < 0 {
		return false, fmt.Errorf("%w: damage %d", ErrInvalidAmount, amount)
	}
	maxDurability := i.MaxDurability()
	current := max(0, i.Durability()-amount)
	i.CurrentDurability = &current
	i.Condition = conditionFor(current, maxDurability, 0)
	return current <= 0, nil
}

// Repair restores durability. A nil amount repairs fully; otherwise amount is
// added up to the maximum.
func (i *ItemInstance) Repair(amount *int, at time.Time) error {
	if i.template == nil {
		return fmt.Errorf("%w: item %d", ErrTemplateNotBound, i.ID)
	}
	maxDurability := i.MaxDurability()
	current := maxDurability
	if amount != nil {
		if *amount < 0 {
			return fmt.Errorf("%w: repair %d", ErrInvalidAmount, *amount)
		}
		// clamp before adding so huge amounts cannot wrap
		current = min(maxDurability, i.Durability()+min(*amount, maxDurability))
	}
	i.CurrentDurability = &current
	i.Condition = conditionFor(current, maxDurability, MaxCondition)
	i.LastRepairedAt = &at
	return nil
}

// conditionFor maps durability to a 0-100 percentage. Items without any
// durability report whenZeroMax.
func conditionFor(current, maxDurability, whenZeroMax int) int {
	if maxDurability <= 0 {
		return whenZeroMax
	}
	c := int(float64(current) / float64(maxDurability) * 100)
	return min(max(c, 0), MaxCondition)
}
