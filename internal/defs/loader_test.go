package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsAreValid(t *testing.T) {
	lib := NewLibrary()
	require.Equal(t, []string{"bubble", "racer", "runner", "strike", "zombie"}, lib.IDs())
	for _, id := range lib.IDs() {
		def, err := lib.Lookup(id)
		require.NoError(t, err)
		assert.NoError(t, def.Validate(), id)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := NewLibrary().Lookup("pinball")
	require.ErrorIs(t, err, ErrUnknownGame)
}

func TestLookupReturnsPrivateCopy(t *testing.T) {
	lib := NewLibrary()
	def, err := lib.Lookup("zombie")
	require.NoError(t, err)

	def.Enemies[VariantBoss] = EnemyDefinition{}
	def.Pickups.Table[0].Weight = 99

	again, err := lib.Lookup("zombie")
	require.NoError(t, err)
	assert.Equal(t, 20.0, again.Enemies[VariantBoss].Health)
	assert.Equal(t, 1, again.Pickups.Table[0].Weight)
}

func TestSaveLoadOverridesByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")

	src := NewLibrary()
	z := src["zombie"]
	z.Waves.QuotaBase = 9
	src["zombie"] = z
	require.NoError(t, src.Save(path))

	dst := NewLibrary()
	require.NoError(t, dst.Load(path))
	def, err := dst.Lookup("zombie")
	require.NoError(t, err)
	assert.Equal(t, 9, def.Waves.QuotaBase)
}

func TestLoadRejectsInvalidDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"version":1,"id":"x","arena":{"width":0,"height":10}}]`), 0o644))

	lib := NewLibrary()
	err := lib.Load(path)
	require.Error(t, err)
	_, ok := lib["x"]
	assert.False(t, ok)
}

func TestWaveCurves(t *testing.T) {
	w := WaveDefinition{QuotaBase: 5, QuotaGrowth: 2, SpawnEveryTicks: 60, MinSpawnEveryTicks: 20, SpawnSpeedupPerWave: 15, BossEvery: 5}

	assert.Equal(t, 7, w.Quota(1))
	assert.Equal(t, 9, w.Quota(2))
	assert.Equal(t, 60, w.SpawnInterval(1))
	assert.Equal(t, 45, w.SpawnInterval(2))
	assert.Equal(t, 20, w.SpawnInterval(10))
	assert.True(t, w.IsBossWave(5))
	assert.True(t, w.IsBossWave(10))
	assert.False(t, w.IsBossWave(4))
}

func TestWeaponCurves(t *testing.T) {
	w := WeaponDefinition{BaseDamage: 1, DamagePerLevel: 2, UpgradeBaseCost: 50}
	assert.Equal(t, 1.0, w.Damage(1))
	assert.Equal(t, 5.0, w.Damage(3))
	assert.Equal(t, 100, w.UpgradeCost(2))
}
