package domain

// Actor is the character performing an operation.
type Actor interface {
	ID() int64
	Name() string
	SkillLevel(skill string) int
}

// Character is a plain Actor backed by a skill map.
type Character struct {
	CharacterID int64          `json:"id"`
	DisplayName string         `json:"name"`
	Skills      map[string]int `json:"skills,omitempty"`
}

func (c Character) ID() int64    { return c.CharacterID }
func (c Character) Name() string { return c.DisplayName }

// SkillLevel returns the named skill, 0 when untrained.
func (c Character) SkillLevel(skill string) int {
	return c.Skills[skill]
}
