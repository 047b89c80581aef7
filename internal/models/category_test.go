package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromLabel(t *testing.T) {
	for _, label := range CategoryLabels() {
		c, ok := CategoryFromLabel(label)
		require.True(t, ok, "label %q must resolve", label)
		assert.True(t, c.Valid())
	}
}

func TestCategoryFromLabelRejectsUnknown(t *testing.T) {
	for _, label := range []string{"", "Birthday", "День Рождения", "🎂 день рождения", " 🎂 День Рождения"} {
		_, ok := CategoryFromLabel(label)
		assert.False(t, ok, "label %q must not resolve", label)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 01-03-2024 ")
	require.NoError(t, err)
	assert.Equal(t, "01-03-2024", got)

	_, err = ParseDate("31-02-2024")
	assert.Error(t, err, "impossible calendar dates are rejected")

	_, err = ParseDate("2024-03-01")
	assert.Error(t, err)
}
