package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlace(t *testing.T) {
	t.Run("should create valid place", func(t *testing.T) {
		p, err := kernel.NewPlace("La Matanza", "Buenos Aires")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "La Matanza", p.City())
		assert.Equal(t, "Buenos Aires", p.Province())
	})

	t.Run("should trim whitespace", func(t *testing.T) {
		p, err := kernel.NewPlace("  Rosario ", " Santa Fe  ")

		require.NoError(t, err)
		assert.Equal(t, "Rosario", p.City())
		assert.Equal(t, "Santa Fe", p.Province())
	})

	t.Run("should fail with empty city", func(t *testing.T) {
		_, err := kernel.NewPlace("", "Buenos Aires")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should fail with empty province", func(t *testing.T) {
		_, err := kernel.NewPlace("La Plata", "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "province")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var p kernel.Place
		require.Error(t, p.Validate())
	})
}

func TestPlace_Matching(t *testing.T) {
	p, _ := kernel.NewPlace("La Matanza", "Buenos Aires")

	t.Run("IsEqual ignores case", func(t *testing.T) {
		other, _ := kernel.NewPlace("la matanza", "BUENOS AIRES")
		assert.True(t, p.IsEqual(other))
	})

	t.Run("IsEqual differs on city", func(t *testing.T) {
		other, _ := kernel.NewPlace("Morón", "Buenos Aires")
		assert.False(t, p.IsEqual(other))
	})

	t.Run("SameProvince ignores city", func(t *testing.T) {
		other, _ := kernel.NewPlace("Morón", "buenos aires")
		assert.True(t, p.SameProvince(other))
	})

	t.Run("CityMatches is substring based", func(t *testing.T) {
		assert.True(t, p.CityMatches("Zona Oeste - LA MATANZA y alrededores"))
		assert.False(t, p.CityMatches("Zona Sur - Lomas de Zamora"))
	})

	t.Run("ProvinceMatches is substring based", func(t *testing.T) {
		assert.True(t, p.ProvinceMatches("buenos aires interior"))
		assert.False(t, p.ProvinceMatches("Córdoba capital"))
	})

	t.Run("String renders city, province", func(t *testing.T) {
		assert.Equal(t, "La Matanza, Buenos Aires", p.String())
	})
}
