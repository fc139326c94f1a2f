package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssetType(t *testing.T) {
	got, err := ParseAssetType("macbook")
	require.NoError(t, err)
	assert.Equal(t, AssetMacbook, got)
	assert.True(t, got.NeedsInsurance())

	got, err = ParseAssetType("Windows Laptop")
	require.NoError(t, err)
	assert.False(t, got.NeedsInsurance())

	_, err = ParseAssetType("Tablet")
	assert.Error(t, err)
}

func TestAccessRemoval(t *testing.T) {
	t.Run("keeps checklist order and drops unknown names", func(t *testing.T) {
		r := NewAccessRemoval(" Asha ", []string{"VPN Access", "Slack", "Fax Machine"})

		assert.Equal(t, "Asha", r.Employee)
		assert.Equal(t, []string{"Slack", "VPN Access"}, r.Removed)
		assert.True(t, r.Complete())
		assert.Equal(t, "Access removed from: Slack, VPN Access", r.Report())
	})

	t.Run("nothing checked", func(t *testing.T) {
		r := NewAccessRemoval("Asha", nil)

		assert.False(t, r.Complete())
		assert.Equal(t, "No platforms selected for access removal.", r.Report())
	})
}
