package enchanting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/validation"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()
	c := DefaultCatalog()

	require.NoError(t, validation.Struct(c))
	assert.Equal(t, []string{"flaming", "frost", "holy", "sharpness", "shocking", "swiftness", "vampiric", "vorpal"}, c.Keys(true))
	assert.Len(t, c.Keys(false), 7)

	sharp, ok := c.Lookup("sharpness", true)
	require.True(t, ok)
	assert.Equal(t, 5, sharp.FlatBonus)
	assert.Equal(t, domain.EffectDamage, sharp.Type)

	_, ok = c.Lookup("sharpness", false)
	assert.False(t, ok)
}

func TestLoadCatalogMatchesDefault(t *testing.T) {
	t.Parallel()

	loaded, err := LoadCatalog("../../configs/enchantments.json", validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), loaded)
}

func TestLoadCatalogRejectsBadContent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "schema violation",
			content: `{"version":"1.0","weapon":{"x":{"name":"X","type":"damage"}},"armor":{}}`,
		},
		{
			name:    "zero material quantity",
			content: `{"version":"1.0","weapon":{},"armor":{"x":{"name":"X","type":"armor","skill_required":"enchanting","skill_level":1,"materials":[{"type":"dust","quantity":0}]}}}`,
		},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadCatalog(path, validation.NewSchemaValidator())
			assert.ErrorIs(t, err, domain.ErrInvalidContent, "case %d", i)
		})
	}

	_, err := LoadCatalog(filepath.Join(dir, "missing.json"), validation.NewSchemaValidator())
	assert.Error(t, err)
}
