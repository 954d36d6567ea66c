package domain

import "time"

// AddEnchantment appends e, enforcing enchantability and the template's
// enchantment limit. AppliedAt is stamped with at.
func (i *ItemInstance) AddEnchantment(e Enchantment, at time.Time) Outcome {
	if i.template == nil || !i.template.Enchantable {
		return Failed(MsgCannotEnchant)
	}
	limit := i.template.MaxEnchantments
	if len(i.Enchantments) >= limit {
		return Failed(EnchantCapacityMessage(limit))
	}
	e.AppliedAt = at
	i.Enchantments = append(i.Enchantments, e)
	return Succeeded(MsgEnchantmentApplied)
}

// HasEnchantmentNamed reports whether an enchantment with this display name is present.
func (i *ItemInstance) HasEnchantmentNamed(name string) bool {
	for _, e := range i.Enchantments {
		if e.Name == name {
			return true
		}
	}
	return false
}
