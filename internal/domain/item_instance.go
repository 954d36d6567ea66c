package domain

import (
	"fmt"
	"time"

	"github.com/osse101/itemforge/internal/taxonomy"
)

// Instance defaults
const (
	MaxCondition           = 100
	DefaultQualityModifier = 1.0
)

// ItemInstance is one concrete item in the world. Derived stats are computed
// on read from the instance state and its bound template.
type ItemInstance struct {
	ID          int64  `json:"id" db:"id"`
	TemplateID  int    `json:"-" db:"template_id"`
	TemplateKey string `json:"template_id" db:"template_key"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`

	Condition         int     `json:"condition" db:"condition"`
	CurrentDurability *int    `json:"current_durability" db:"current_durability"`
	QualityModifier   float64 `json:"quality_modifier" db:"quality_modifier"`

	Sockets      []SocketSlot  `json:"sockets" db:"sockets"`
	Enchantments []Enchantment `json:"enchantments" db:"enchantments"`

	Sharpness int `json:"sharpness" db:"sharpness"`
	Balance   int `json:"balance" db:"balance"`

	CustomName  string   `json:"custom_name,omitempty" db:"custom_name"`
	CustomFlags []string `json:"custom_flags,omitempty" db:"custom_flags"`

	Owner        Owner  `json:"owner" db:"-"`
	EquippedSlot string `json:"equipped_slot,omitempty" db:"equipped_slot"`

	RecipeID      *int    `json:"recipe_id,omitempty" db:"recipe_id"`
	CraftedByName string  `json:"crafted_by_name,omitempty" db:"crafted_by_name"`
	Modifications StatBag `json:"modifications,omitempty" db:"modifications"`

	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	CreatedBy      *int64     `json:"created_by,omitempty" db:"created_by"`
	LastRepairedAt *time.Time `json:"last_repaired_at,omitempty" db:"last_repaired_at"`

	template *ItemTemplate
}

// NewItemInstance creates an unsaved instance of t at full durability with
// empty sockets.
func NewItemInstance(t *ItemTemplate, owner Owner, now time.Time) *ItemInstance {
	item := &ItemInstance{
		Name:            t.Name,
		Description:     t.Description,
		Condition:       MaxCondition,
		QualityModifier: DefaultQualityModifier,
		Enchantments:    []Enchantment{},
		Owner:           owner,
		CreatedAt:       now,
	}
	item.Bind(t)
	durability := t.EffectiveDurability()
	item.CurrentDurability = &durability
	item.InitializeSockets()
	return item
}

// Bind attaches the template the instance was created from.
func (i *ItemInstance) Bind(t *ItemTemplate) {
	i.template = t
	if t != nil {
		i.TemplateID = t.ID
		i.TemplateKey = t.TemplateKey
	}
}

// Template returns the bound template, or nil.
func (i *ItemInstance) Template() *ItemTemplate {
	return i.template
}

// DisplayName returns the custom name, or the instance name with a prefix for
// notable quality tiers.
func (i *ItemInstance) DisplayName() string {
	if i.CustomName != "" {
		return i.CustomName
	}
	if i.template == nil {
		return i.Name
	}
	return taxonomy.QualityTier(i.template.QualityTier).DisplayPrefix() + i.Name
}

func (i *ItemInstance) category() taxonomy.Category {
	if i.template == nil {
		return ""
	}
	return i.template.CategoryPath()
}

func (i *ItemInstance) IsEquipment() bool  { return i.category().IsEquipment() }
func (i *ItemInstance) IsWeapon() bool     { return i.category().IsWeapon() }
func (i *ItemInstance) IsArmor() bool      { return i.category().IsArmor() }
func (i *ItemInstance) IsConsumable() bool { return i.category().IsConsumable() }
func (i *ItemInstance) IsKey() bool        { return i.category().IsKey() }

// IsContainer is true for the container category or the container item type.
func (i *ItemInstance) IsContainer() bool {
	if i.template == nil {
		return false
	}
	return i.category().IsContainer() || taxonomy.ItemType(i.template.ItemType) == taxonomy.ItemTypeContainer
}

// CanUnlockDoor reports whether this key opens a door requiring keyID.
// Keys match doors by template id.
func (i *ItemInstance) CanUnlockDoor(keyID string) bool {
	if !i.IsKey() || keyID == "" {
		return false
	}
	return i.template.TemplateKey == keyID
}

// SetOwner replaces the owner and clears any equipped slot.
func (i *ItemInstance) SetOwner(owner Owner) {
	i.Owner = owner
	i.EquippedSlot = ""
}

// Validate checks the instance invariants.
func (i *ItemInstance) Validate() error {
	if i.Condition < 0 || i.Condition > MaxCondition {
		return fmt.Errorf("%w: condition %d", ErrInvariantViolation, i.Condition)
	}
	if i.template == nil {
		return nil
	}
	if len(i.Sockets) != 0 && len(i.Sockets) != i.template.SocketCount {
		return fmt.Errorf("%w: %d sockets, template has %d", ErrInvariantViolation, len(i.Sockets), i.template.SocketCount)
	}
	if len(i.Enchantments) > i.template.MaxEnchantments {
		return fmt.Errorf("%w: %d enchantments, limit %d", ErrInvariantViolation, len(i.Enchantments), i.template.MaxEnchantments)
	}
	return nil
}
