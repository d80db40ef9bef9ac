// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicError runs f and returns the error it panicked with.
func panicError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()
	f()
	return nil
}

func TestActiveBeforeSelect(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	assert.False(t, registry.IsSelected())
	assert.PanicsWithValue(t, ErrNotSelected, func() { registry.Active() })
	assert.PanicsWithValue(t, ErrNotSelected, func() { registry.ModifiableParams() })

	// ParamsFor does not depend on the selection.
	assert.Equal(t, Regtest, registry.ParamsFor(Regtest).NetworkID())
}

func TestSelectEachNetwork(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	for _, id := range Networks() {
		require.NoError(t, registry.Select(id))
		assert.True(t, registry.IsSelected())
		assert.Equal(t, id, registry.Active().NetworkID())
		assert.Same(t, registry.ParamsFor(id), registry.Active())
	}
}

func TestSelectUnknownNetwork(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	err = registry.Select(numNetworks)
	assert.True(t, errors.Is(err, ErrUnknownNetwork))
	assert.False(t, registry.IsSelected())

	require.NoError(t, registry.Select(Main))
	err = registry.Select(Network(42))
	assert.True(t, errors.Is(err, ErrUnknownNetwork))
	assert.Equal(t, Main, registry.Active().NetworkID(), "failed selection keeps the active network")

	err = panicError(t, func() { registry.ParamsFor(Network(42)) })
	assert.True(t, errors.Is(err, ErrUnknownNetwork))
}

func TestSelectRegtest(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, registry.Select(Regtest))

	p := registry.Active()
	assert.EqualValues(t, 18444, p.DefaultPort())
	assert.Equal(t, [4]byte{0xfa, 0xbf, 0xb5, 0xda}, p.MessageStart())
	assert.True(t, p.MineBlocksOnDemand())
	assert.False(t, p.RequireRPCPassword())
}

func TestModifiableParams(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	for _, id := range []Network{Main, Testnet, Regtest} {
		require.NoError(t, registry.Select(id))
		err := panicError(t, func() { registry.ModifiableParams() })
		assert.True(t, errors.Is(err, ErrNotUnitTest), id.String())
	}

	require.NoError(t, registry.Select(UnitTest))
	mainHalving := registry.ParamsFor(Main).SubsidyHalvingInterval()

	mutable := registry.ModifiableParams()
	mutable.SetSubsidyHalvingInterval(100)
	mutable.SetEnforceBlockUpgradeMajority(1)
	mutable.SetRejectBlockOutdatedMajority(2)
	mutable.SetToCheckBlockUpgradeMajority(3)
	mutable.SetDefaultCheckMemPool(false)
	mutable.SetAllowMinDifficultyBlocks(true)
	mutable.SetSkipProofOfWorkCheck(true)

	active := registry.Active()
	assert.Same(t, active, mutable.Params())
	assert.EqualValues(t, 100, active.SubsidyHalvingInterval())
	assert.EqualValues(t, 1, active.EnforceBlockUpgradeMajority())
	assert.EqualValues(t, 2, active.RejectBlockOutdatedMajority())
	assert.EqualValues(t, 3, active.ToCheckBlockUpgradeMajority())
	assert.False(t, active.DefaultCheckMemPool())
	assert.True(t, active.AllowMinDifficultyBlocks())
	assert.True(t, active.SkipProofOfWorkCheck())
	assert.NoError(t, active.validate())

	// The main network the unit test network was derived from is untouched.
	mainNet := registry.ParamsFor(Main)
	assert.Equal(t, mainHalving, mainNet.SubsidyHalvingInterval())
	assert.EqualValues(t, 210000, mainNet.SubsidyHalvingInterval())
	assert.EqualValues(t, 750, mainNet.EnforceBlockUpgradeMajority())
	assert.False(t, mainNet.SkipProofOfWorkCheck())
	assert.Equal(t, mainPowLimitBits, mainNet.PowLimitBits())

	// Other registries are untouched as well.
	other, err := NewRegistry()
	require.NoError(t, err)
	assert.EqualValues(t, 210000, other.ParamsFor(UnitTest).SubsidyHalvingInterval())
}

func TestModifiableParamsAfterReselect(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, registry.Select(UnitTest))

	mutable := registry.ModifiableParams()
	mutable.SetSubsidyHalvingInterval(100)

	require.NoError(t, registry.Select(Main))
	setters := map[string]func(){
		"halving":  func() { mutable.SetSubsidyHalvingInterval(7) },
		"enforce":  func() { mutable.SetEnforceBlockUpgradeMajority(7) },
		"reject":   func() { mutable.SetRejectBlockOutdatedMajority(7) },
		"window":   func() { mutable.SetToCheckBlockUpgradeMajority(7) },
		"mempool":  func() { mutable.SetDefaultCheckMemPool(true) },
		"mindiff":  func() { mutable.SetAllowMinDifficultyBlocks(false) },
		"skip pow": func() { mutable.SetSkipProofOfWorkCheck(false) },
	}
	for name, set := range setters {
		err := panicError(t, set)
		assert.True(t, errors.Is(err, ErrNotUnitTest), name)
	}

	unitTest := registry.ParamsFor(UnitTest)
	assert.EqualValues(t, 100, unitTest.SubsidyHalvingInterval())
	assert.EqualValues(t, 750, unitTest.EnforceBlockUpgradeMajority())
	assert.True(t, unitTest.DefaultCheckMemPool())
	assert.EqualValues(t, 210000, registry.Active().SubsidyHalvingInterval())

	// Selecting the unit test network again makes the handle usable.
	require.NoError(t, registry.Select(UnitTest))
	mutable.SetSubsidyHalvingInterval(50)
	assert.EqualValues(t, 50, registry.Active().SubsidyHalvingInterval())
}

func TestConcurrentActive(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, registry.Select(Testnet))

	var wg sync.WaitGroup
	results := make([]Network, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results[i] = registry.Active().NetworkID()
			}
		}(i)
	}
	wg.Wait()

	for _, id := range results {
		assert.Equal(t, Testnet, id)
	}
}

func TestDefaultRegistry(t *testing.T) {
	for _, id := range Networks() {
		assert.Same(t, defaultRegistry.ParamsFor(id), ParamsFor(id))
	}

	require.NoError(t, SelectParams(UnitTest))
	assert.Equal(t, UnitTest, ActiveParams().NetworkID())

	mutable := ModifiableParams()
	prev := ActiveParams().SubsidyHalvingInterval()
	mutable.SetSubsidyHalvingInterval(100)
	assert.EqualValues(t, 100, ActiveParams().SubsidyHalvingInterval())
	assert.EqualValues(t, 210000, ParamsFor(Main).SubsidyHalvingInterval())
	mutable.SetSubsidyHalvingInterval(prev)

	require.NoError(t, SelectParams(Main))
	assert.Equal(t, Main, ActiveParams().NetworkID())
}
