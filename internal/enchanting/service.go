package enchanting

import (
	"time"

	"github.com/osse101/itemforge/internal/domain"
)

// Service validates and applies enchantments from a catalog.
type Service interface {
	CanEnchant(item *domain.ItemInstance, key string, actor domain.Actor) domain.Outcome
	Enchant(item *domain.ItemInstance, key string, actor domain.Actor) domain.Outcome
	Power(item *domain.ItemInstance) int
	Materials(key string, weapon bool) []Material
	Catalog() *Catalog
}

type service struct {
	catalog *Catalog
	now     func() time.Time
}

// NewService creates an enchanting service over catalog. now stamps applied_at;
// nil means time.Now.
func NewService(catalog *Catalog, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{catalog: catalog, now: now}
}

func (s *service) Catalog() *Catalog { return s.catalog }

// entryFor resolves key against the catalog matching the item's category.
// The failure outcome names the other category when only it has the key.
func (s *service) entryFor(item *domain.ItemInstance, key string) (Entry, domain.Outcome, bool) {
	var (
		entry Entry
		found bool
	)
	switch {
	case item.IsWeapon():
		entry, found = s.catalog.Lookup(key, true)
	case item.IsArmor():
		entry, found = s.catalog.Lookup(key, false)
	}
	if found {
		return entry, domain.Outcome{}, true
	}

	if _, ok := s.catalog.Lookup(key, true); ok && !item.IsWeapon() {
		return Entry{}, domain.Failed(domain.MsgWeaponOnlyEnchant), false
	}
	if _, ok := s.catalog.Lookup(key, false); ok && !item.IsArmor() {
		return Entry{}, domain.Failed(domain.MsgArmorOnlyEnchant), false
	}
	return Entry{}, domain.Failed(domain.MsgUnknownEnchantment), false
}

func (s *service) check(item *domain.ItemInstance, key string, actor domain.Actor) (Entry, domain.Outcome) {
	t := item.Template()
	if t == nil || !t.Enchantable {
		return Entry{}, domain.Failed(domain.MsgCannotEnchant)
	}

	entry, failure, ok := s.entryFor(item, key)
	if !ok {
		return Entry{}, failure
	}

	if len(item.Enchantments) >= t.MaxEnchantments {
		return Entry{}, domain.Failed(domain.EnchantCapacityMessage(t.MaxEnchantments))
	}
	if item.HasEnchantmentNamed(entry.Name) {
		return Entry{}, domain.Failed(domain.MsgAlreadyEnchanted)
	}
	if actor != nil && entry.SkillRequired != "" && actor.SkillLevel(entry.SkillRequired) < entry.SkillLevel {
		return Entry{}, domain.Failed(domain.SkillRequiredMessage(entry.SkillRequired, entry.SkillLevel))
	}
	return entry, domain.Succeeded(domain.MsgCanEnchant)
}

// CanEnchant reports whether key can be applied to item. actor may be nil,
// which skips the skill check.
func (s *service) CanEnchant(item *domain.ItemInstance, key string, actor domain.Actor) domain.Outcome {
	_, outcome := s.check(item, key, actor)
	return outcome
}

// Enchant re-validates and appends a record copying the catalog payload.
func (s *service) Enchant(item *domain.ItemInstance, key string, actor domain.Actor) domain.Outcome {
	entry, outcome := s.check(item, key, actor)
	if !outcome.Success {
		return outcome
	}

	record := domain.Enchantment{
		ID:                key,
		Name:              entry.Name,
		Type:              entry.Type,
		EnchantmentEffect: entry.EnchantmentEffect.Clone(),
	}
	if actor != nil {
		name := actor.Name()
		record.AppliedBy = &name
	}
	return item.AddEnchantment(record, s.now())
}

// Materials returns a copy of the reagents for key, nil when unknown.
func (s *service) Materials(key string, weapon bool) []Material {
	entry, ok := s.catalog.Lookup(key, weapon)
	if !ok || len(entry.Materials) == 0 {
		return nil
	}
	return append([]Material(nil), entry.Materials...)
}

// Power is a coarse score of an item's enchantments for display and sorting.
func (s *service) Power(item *domain.ItemInstance) int {
	return EnchantmentPower(item.Enchantments)
}

// EnchantmentPower scores enchantments: mean bonus damage plus flat bonus,
// armor bonus doubled, resistance as-is, speed gain times 50, special 20.
func EnchantmentPower(enchantments []domain.Enchantment) int {
	power := 0.0
	for _, e := range enchantments {
		switch e.Type {
		case domain.EffectDamage:
			r := e.BonusRange()
			power += float64(r.Min()+r.Max()) / 2
			power += float64(e.FlatBonus)
		case domain.EffectArmor:
			power += float64(e.ArmorBonus) * armorPowerWeight
		case domain.EffectResistance:
			power += float64(e.Reduction)
		case domain.EffectSpeed:
			power += (1.0 - e.SpeedMultiplier()) * speedPowerWeight
		case domain.EffectSpecial:
			power += specialPowerWeight
		}
	}
	return int(power)
}
