package confspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/confspec"
	"github.com/reoring/confspec/coerce"
)

func TestDictOf_DiscoversSubkeysUnderPrefix(t *testing.T) {
	spec := confspec.Object().
		Field("a", confspec.DictOf(confspec.Leaf(coerce.Integer))).
		MustBuild()

	raw := confspec.RawConfigFrom(map[string]string{
		"a.x": "1",
		"a.y": "2",
		"b.x": "3", // wrong prefix, excluded
	})

	cfg, err := confspec.ParseConfig(raw, spec)
	require.NoError(t, err)

	a := cfg.Namespace("a")
	require.NotNil(t, a)
	assert.Equal(t, []string{"x", "y"}, a.Keys())
	assert.Equal(t, int64(1), confspec.MustAs[int64](a, "x"))
	assert.Equal(t, int64(2), confspec.MustAs[int64](a, "y"))
}

func TestDictOf_AtRootPath(t *testing.T) {
	raw := confspec.RawConfigFrom(map[string]string{
		"br": "207645000",
		"cn": "1383260000",
	})

	ns, err := confspec.ParseConfig(raw, confspec.DictOf(confspec.Leaf(coerce.Integer)))
	require.NoError(t, err)
	assert.Equal(t, []string{"br", "cn"}, ns.Keys())
	assert.Equal(t, int64(207645000), confspec.MustAs[int64](ns, "br"))
}

func TestDictOf_DedupsSubkeysAcrossDeeperKeys(t *testing.T) {
	// Both raw keys share the "cn" subkey; the nested object spec must be
	// resolved exactly once for it.
	var resolutions int
	counting := confspec.Object().
		Field("population", confspec.Leaf(func(text string) (int64, error) {
			resolutions++
			return coerce.Integer(text)
		})).
		Field("capital", confspec.Leaf(coerce.String)).
		MustBuild()

	spec := confspec.Object().
		Field("countries", confspec.DictOf(counting)).
		MustBuild()

	raw := confspec.RawConfigFrom(map[string]string{
		"countries.cn.population": "1383260000",
		"countries.cn.capital":    "Beijing",
	})

	cfg, err := confspec.ParseConfig(raw, spec)
	require.NoError(t, err)
	assert.Equal(t, 1, resolutions)

	cn := cfg.Namespace("countries").Namespace("cn")
	require.NotNil(t, cn)
	assert.Equal(t, "Beijing", confspec.MustAs[string](cn, "capital"))
	assert.Equal(t, int64(1383260000), confspec.MustAs[int64](cn, "population"))
}

func TestDictOf_NoMatchesYieldsEmptyNamespace(t *testing.T) {
	spec := confspec.Object().
		Field("population", confspec.DictOf(confspec.Leaf(coerce.Integer))).
		MustBuild()

	cfg, err := confspec.ParseConfig(confspec.NewRawConfig(), spec)
	require.NoError(t, err)

	population := cfg.Namespace("population")
	require.NotNil(t, population)
	assert.Equal(t, 0, population.Len())
}

func TestDictOf_ErrorCarriesDiscoveredKeyPath(t *testing.T) {
	spec := confspec.Object().
		Field("population", confspec.DictOf(confspec.Leaf(coerce.Integer))).
		MustBuild()

	raw := confspec.RawConfigFrom(map[string]string{
		"population.br": "not-a-number",
	})

	_, err := confspec.ParseConfig(raw, spec)
	require.Error(t, err)
	ce, ok := confspec.AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, "population.br", ce.Key)
}

func TestDictOf_DiscoveryOrderFollowsRawOrder(t *testing.T) {
	raw := confspec.NewRawConfig()
	raw.Set("servers.web", "web:80")
	raw.Set("servers.db", "db:5432")
	raw.Set("servers.cache", "cache:6379")

	spec := confspec.Object().
		Field("servers", confspec.DictOf(confspec.Leaf(coerce.Endpoint))).
		MustBuild()

	cfg, err := confspec.ParseConfig(raw, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"web", "db", "cache"}, cfg.Namespace("servers").Keys())
}

func TestDictOf_NilSubordinateIsSpecError(t *testing.T) {
	_, err := confspec.Parse(confspec.NewRawConfig(), confspec.DictOf(nil))
	var se *confspec.SpecError
	require.ErrorAs(t, err, &se)
}
