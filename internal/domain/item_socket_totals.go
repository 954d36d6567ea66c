package domain

// SocketBonuses is the sum of every filled slot's snapshot.
type SocketBonuses struct {
	DamageBonus int               `json:"damage_bonus"`
	ArmorBonus  int               `json:"armor_bonus"`
	DamageTypes []DamageComponent `json:"damage_types"`
	Resistances map[string]int    `json:"resistances"`
	Stats       map[string]int    `json:"stats"`
}

// SocketBonusTotals folds the filled socket snapshots into aggregate bonuses.
// Stat resolution reads sockets only through this.
func (i *ItemInstance) SocketBonusTotals() SocketBonuses {
	totals := SocketBonuses{
		DamageTypes: []DamageComponent{},
		Resistances: map[string]int{},
		Stats:       map[string]int{},
	}
	for _, s := range i.FilledSockets() {
		b := s.Bonuses
		totals.DamageBonus += b.Int(StatDamageBonus)
		totals.ArmorBonus += b.Int(StatArmorBonus)

		if dt := b.String(StatDamageType); dt != "" {
			totals.DamageTypes = append(totals.DamageTypes, DamageComponent{
				Type: dt,
				Min:  b.Int(StatDamageMin),
				Max:  b.Int(StatDamageMax),
			})
		}
		for dt, amount := range b.IntMap(StatDamageReduction) {
			totals.Resistances[dt] += amount
		}
		for _, stat := range AttributeStats {
			if _, ok := b[stat]; ok {
				totals.Stats[stat] += b.Int(stat)
			}
		}
	}
	return totals
}
