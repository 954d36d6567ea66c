package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamage(t *testing.T) {
	t.Parallel()

	t.Run("overkill clamps to zero and breaks", func(t *testing.T) {
		item := newItem(swordTemplate(), 1)
		item.CurrentDurability = intPtr(10)

		broken, err := item.Damage(15)

		require.NoError(t, err)
		assert.True(t, broken)
		assert.Equal(t, 0, *item.CurrentDurability)
		assert.Equal(t, 0, item.Condition)
		assert.True(t, item.IsBroken())
	})

	t.Run("partial damage recomputes condition", func(t *testing.T) {
		item := newItem(breastplateTemplate(), 1) // max 130

		broken, err := item.Damage(31)

		require.NoError(t, err)
		assert.False(t, broken)
		assert.Equal(t, 99, *item.CurrentDurability)
		assert.Equal(t, 76, item.Condition)
	})

	t.Run("unset durability starts from the maximum", func(t *testing.T) {
		item := newItem(swordTemplate(), 1)
		item.CurrentDurability = nil

		_, err := item.Damage(25)

		require.NoError(t, err)
		assert.Equal(t, 75, *item.CurrentDurability)
		assert.Equal(t, 75, item.Condition)
	})

	t.Run("zero max durability gives zero condition", func(t *testing.T) {
		tmpl := swordTemplate()
		tmpl.MaxDurability = 0
		item := newItem(tmpl, 1)

		broken, err := item.Damage(1)

		require.NoError(t, err)
		assert.True(t, broken)
		assert.Equal(t, 0, item.Condition)
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		item := newItem(swordTemplate(), 1)
		_, err := item.Damage(-5)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Equal(t, 100, *item.CurrentDurability)
	})

	t.Run("unbound template", func(t *testing.T) {
		_, err := (&ItemInstance{ID: 4}).Damage(1)
		assert.ErrorIs(t, err, ErrTemplateNotBound)
	})
}

func TestRepair(t *testing.T) {
	t.Parallel()

	t.Run("full repair", func(t *testing.T) {
		item := newItem(swordTemplate(), 1)
		_, err := item.Damage(100)
		require.NoError(t, err)

		require.NoError(t, item.Repair(nil, testNow))

		assert.Equal(t, 100, *item.CurrentDurability)
		assert.Equal(t, 100, item.Condition)
		assert.False(t, item.IsBroken())
		require.NotNil(t, item.LastRepairedAt)
		assert.Equal(t, testNow, *item.LastRepairedAt)
	})

	t.Run("partial repair is bounded by the maximum", func(t *testing.T) {
		item := newItem(swordTemplate(), 1)
		item.CurrentDurability = intPtr(40)

		require.NoError(t, item.Repair(intPtr(20), testNow))
		assert.Equal(t, 60, *item.CurrentDurability)
		assert.Equal(t, 60, item.Condition)

		require.NoError(t, item.Repair(intPtr(500), testNow))
		assert.Equal(t, 100, *item.CurrentDurability)
		assert.Equal(t, 100, item.Condition)
	})

	t.Run("huge amounts saturate at the maximum", func(t *testing.T) {
		item := newItem(swordTemplate(), 1)
		item.CurrentDurability = intPtr(40)

		require.NoError(t, item.Repair(intPtr(math.MaxInt), testNow))
		assert.Equal(t, 100, *item.CurrentDurability)
		assert.Equal(t, 100, item.Condition)
		assert.False(t, item.IsBroken())
	})

	t.Run("zero max durability repairs to full condition", func(t *testing.T) {
		tmpl := swordTemplate()
		tmpl.MaxDurability = 0
		item := newItem(tmpl, 1)
		item.Condition = 0

		require.NoError(t, item.Repair(intPtr(3), testNow))
		assert.Equal(t, 100, item.Condition)
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		item := newItem(swordTemplate(), 1)
		assert.ErrorIs(t, item.Repair(intPtr(-1), testNow), ErrInvalidAmount)
	})
}

func TestConditionStaysInRange(t *testing.T) {
	t.Parallel()

	item := newItem(breastplateTemplate(), 1)
	for _, amount := range []int{0, 1, 7, 13, 50, 200} {
		_, err := item.Damage(amount)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, item.Condition, 0)
		assert.LessOrEqual(t, item.Condition, 100)

		require.NoError(t, item.Repair(intPtr(amount/2), testNow))
		assert.GreaterOrEqual(t, item.Condition, 0)
		assert.LessOrEqual(t, item.Condition, 100)
	}

	stale := newItem(swordTemplate(), 2)
	stale.CurrentDurability = intPtr(500)
	_, err := stale.Damage(1)
	require.NoError(t, err)
	assert.Equal(t, 100, stale.Condition)
}
