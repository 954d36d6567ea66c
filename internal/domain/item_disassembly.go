package domain

import (
	"math"
	"strconv"
	"strings"
)

// Disassembly skill scaling
const (
	yieldBonusPerSkillLevel = 0.1
	maxYieldBonus           = 0.5
)

// DisassemblySkill parses the "skill:minLevel" requirement. ok is false when
// the template has no requirement.
func (t *ItemTemplate) DisassemblySkill() (skill string, minLevel int, ok bool) {
	if t.Disassembly == nil || t.Disassembly.SkillRequired == "" {
		return "", 0, false
	}
	skill, level, _ := strings.Cut(t.Disassembly.SkillRequired, ":")
	minLevel, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil {
		reportFallback(FallbackDisassemblySkill, t.TemplateKey, t.Disassembly.SkillRequired)
		minLevel = 0
	}
	return skill, minLevel, true
}

// CanDisassemble checks that the item can be broken down and that actor
// meets the skill requirement. A nil actor has no skills.
func (i *ItemInstance) CanDisassemble(actor Actor) Outcome {
	if i.template == nil || !i.template.HasDisassembly() {
		return Failed(MsgCannotDisassemble)
	}
	skill, minLevel, ok := i.template.DisassemblySkill()
	if ok {
		level := 0
		if actor != nil {
			level = actor.SkillLevel(skill)
		}
		if level < minLevel {
			return Failed(SkillRequiredMessage(skill, minLevel))
		}
	}
	return Succeeded(MsgCanDisassemble)
}

// DisassemblyYield scales each template yield quantity by 10% per skill level,
// capped at +50%, with a floor of 1. One existing_item entry is appended per
// filled socket. Sockets are left untouched.
func (i *ItemInstance) DisassemblyYield(skillLevel int) []YieldEntry {
	if i.template == nil || !i.template.HasDisassembly() {
		return []YieldEntry{}
	}
	bonus := math.Min(float64(skillLevel)*yieldBonusPerSkillLevel, maxYieldBonus)

	result := make([]YieldEntry, 0, len(i.template.Disassembly.Yields))
	for _, y := range i.template.Disassembly.Yields {
		entry := y
		if y.ItemID != nil {
			id := *y.ItemID
			entry.ItemID = &id
		}
		if y.Extra != nil {
			entry.Extra = y.Extra.Clone()
		}
		if y.Quantity != nil {
			q := max(1, int(float64(*y.Quantity)*(1+bonus)))
			entry.Quantity = &q
		}
		result = append(result, entry)
	}

	for _, s := range i.FilledSockets() {
		if s.ItemID == nil {
			continue
		}
		id := *s.ItemID
		one := 1
		result = append(result, YieldEntry{Type: YieldTypeExistingItem, ItemID: &id, Quantity: &one})
	}
	return result
}
