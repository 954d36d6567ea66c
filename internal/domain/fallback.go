package domain

import (
	"log/slog"

	"github.com/osse101/itemforge/internal/metrics"
)

// Content fallback kinds, used as the metric label.
const (
	FallbackMaterial         = "material"
	FallbackWeaponType       = "weapon_type"
	FallbackQualityTier      = "quality_tier"
	FallbackSocketType       = "socket_type"
	FallbackItemType         = "item_type"
	FallbackDisassemblySkill = "disassembly_skill"
)

// reportFallback records content that resolved to a default value. Numeric
// results are unaffected; this only surfaces authoring defects.
func reportFallback(kind, templateKey string, value any) {
	slog.Warn("content fallback",
		"kind", kind,
		"template_id", templateKey,
		"value", value)
	metrics.ContentFallbacksTotal.WithLabelValues(kind).Inc()
}
