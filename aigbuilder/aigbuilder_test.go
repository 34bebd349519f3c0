package aigbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigrw/aigbuilder"
	"github.com/katalvlaran/aigrw/depthview"
)

func TestScenarios_BuildWithExpectedDepth(t *testing.T) {
	cases := []struct {
		name  string
		fn    func() aigbuilder.Scenario
		depth int
	}{
		{"associativity", aigbuilder.Associativity, 4},
		{"distributivity-or", aigbuilder.DistributivityOR, 3},
		{"distributivity-and", aigbuilder.DistributivityAND, 3},
		{"three-layer", aigbuilder.ThreeLayer, 4},
		{"already-optimal", aigbuilder.AlreadyOptimal, 1},
	}

	for _, c := range cases {
		s := c.fn()
		assert.Equal(t, c.name, s.Name)

		dv := depthview.New(s.Network)
		dv.Update()
		assert.Equal(t, c.depth, dv.Depth(), "scenario %s", c.name)
	}
}

func TestByName_RoundTripsEveryRegisteredScenario(t *testing.T) {
	for _, name := range aigbuilder.Names() {
		s, err := aigbuilder.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
		assert.NotNil(t, s.Network)
	}
}

func TestByName_UnknownScenario(t *testing.T) {
	_, err := aigbuilder.ByName("does-not-exist")
	assert.ErrorIs(t, err, aigbuilder.ErrUnknownScenario)
}

func TestRandom_DeterministicForSameSeed(t *testing.T) {
	a, err := aigbuilder.Random(6, 10, 42)
	require.NoError(t, err)
	b, err := aigbuilder.Random(6, 10, 42)
	require.NoError(t, err)

	dvA := depthview.New(a.Network)
	dvA.Update()
	dvB := depthview.New(b.Network)
	dvB.Update()

	assert.Equal(t, dvA.Depth(), dvB.Depth())
	assert.Equal(t, a.Network.NumNodes(), b.Network.NumNodes())
}

func TestRandom_RejectsTooFewInputs(t *testing.T) {
	_, err := aigbuilder.Random(1, 3, 1)
	assert.ErrorIs(t, err, aigbuilder.ErrTooFewInputs)
}
