package taxonomy

// QualityTier is the rarity band of an item template.
type QualityTier string

const (
	QualityJunk      QualityTier = "junk"
	QualityPoor      QualityTier = "poor"
	QualityCommon    QualityTier = "common"
	QualityGood      QualityTier = "good"
	QualityUncommon  QualityTier = "uncommon"
	QualityRare      QualityTier = "rare"
	QualityEpic      QualityTier = "epic"
	QualityLegendary QualityTier = "legendary"
	QualityArtifact  QualityTier = "artifact"
	QualityMythic    QualityTier = "mythic"
)

// DefaultQualityTier applies to templates without a tier.
const DefaultQualityTier = QualityCommon

var qualityOrder = []QualityTier{
	QualityJunk, QualityPoor, QualityCommon, QualityGood, QualityUncommon,
	QualityRare, QualityEpic, QualityLegendary, QualityArtifact, QualityMythic,
}

// ParseQualityTier returns the tier for token, or DefaultQualityTier and false.
func ParseQualityTier(token string) (QualityTier, bool) {
	for _, q := range qualityOrder {
		if string(q) == token {
			return q, true
		}
	}
	return DefaultQualityTier, false
}

// Rank orders tiers from junk (0) to mythic (9). Unknown tiers rank as common.
func (q QualityTier) Rank() int {
	for i, t := range qualityOrder {
		if t == q {
			return i
		}
	}
	return DefaultQualityTier.Rank()
}

// DisplayPrefix is prepended to instance names of notable tiers.
func (q QualityTier) DisplayPrefix() string {
	switch q {
	case QualityEpic:
		return "Epic "
	case QualityLegendary:
		return "Legendary "
	case QualityArtifact:
		return "Artifact "
	default:
		return ""
	}
}
