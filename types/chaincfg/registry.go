// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Registry holds the parameters of every supported network and the one
// selected for the running process.
//
// Selection happens once, early during startup, on a single goroutine.  From
// then on Active is safe for concurrent use and never blocks.
type Registry struct {
	profiles map[Network]*Params

	mtx    sync.Mutex
	active atomic.Pointer[Params]
}

// NewRegistry builds the parameters of every network, verifies each of them
// and the rules between them.  No network is selected.
func NewRegistry() (*Registry, error) {
	mainNet, err := newMainNetParams()
	if err != nil {
		return nil, err
	}
	testNet, err := newTestNetParams(mainNet)
	if err != nil {
		return nil, err
	}
	regTest, err := newRegTestParams(testNet)
	if err != nil {
		return nil, err
	}
	unitTest, err := newUnitTestParams(mainNet)
	if err != nil {
		return nil, err
	}

	profiles := map[Network]*Params{
		Main:     mainNet,
		Testnet:  testNet,
		Regtest:  regTest,
		UnitTest: unitTest,
	}
	if err := validateNetworkSet(profiles); err != nil {
		return nil, err
	}

	return &Registry{profiles: profiles}, nil
}

// Select makes net the active network.  Selecting again replaces the active
// network and is logged as a warning, it is meant for tests only.
func (r *Registry) Select(net Network) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	params, ok := r.profiles[net]
	if !ok {
		return errors.Wrapf(ErrUnknownNetwork, "network %d", uint8(net))
	}

	if prev := r.active.Load(); prev != nil {
		log.Warnf("Network parameters re-selected: %s -> %s", prev.name, params.name)
	}
	r.active.Store(params)
	log.Infof("Selected %s network parameters (genesis %s)", params.name, params.genesisHash)
	return nil
}

// Active returns the parameters of the selected network.  It panics with
// ErrNotSelected if no network has been selected yet.
func (r *Registry) Active() *Params {
	params := r.active.Load()
	if params == nil {
		panic(ErrNotSelected)
	}
	return params
}

// IsSelected reports whether a network has been selected.
func (r *Registry) IsSelected() bool {
	return r.active.Load() != nil
}

// ParamsFor returns the parameters of net whether it is selected or not.  It
// panics for a network outside of the supported set.
func (r *Registry) ParamsFor(net Network) *Params {
	params, ok := r.profiles[net]
	if !ok {
		panic(errors.Wrapf(ErrUnknownNetwork, "network %d", uint8(net)))
	}
	return params
}

// ModifiableParams returns write access to the active parameters.  It panics
// with ErrNotUnitTest unless the unit test network is selected.
func (r *Registry) ModifiableParams() *UnitTestParams {
	params := r.Active()
	if params.id != UnitTest {
		panic(errors.Wrapf(ErrNotUnitTest, "active network is %s", params.name))
	}
	return &UnitTestParams{registry: r, params: params}
}

// UnitTestParams is write access to the unit test network parameters.  Every
// setter panics with ErrNotUnitTest once another network has been selected.
// The setters are not synchronized, they must not run while other goroutines
// read the parameters.
type UnitTestParams struct {
	registry *Registry
	params   *Params
}

// Params returns the parameters being modified.
func (u *UnitTestParams) Params() *Params { return u.params }

// writable returns the parameters if they are still the active ones.
func (u *UnitTestParams) writable() *Params {
	if active := u.registry.Active(); active != u.params {
		panic(errors.Wrapf(ErrNotUnitTest, "active network is %s", active.name))
	}
	return u.params
}

func (u *UnitTestParams) SetSubsidyHalvingInterval(v int32) {
	u.writable().subsidyHalvingInterval = v
}

func (u *UnitTestParams) SetEnforceBlockUpgradeMajority(v int32) {
	u.writable().enforceBlockUpgradeMajority = v
}

func (u *UnitTestParams) SetRejectBlockOutdatedMajority(v int32) {
	u.writable().rejectBlockOutdatedMajority = v
}

func (u *UnitTestParams) SetToCheckBlockUpgradeMajority(v int32) {
	u.writable().toCheckBlockUpgradeMajority = v
}

func (u *UnitTestParams) SetDefaultCheckMemPool(v bool) { u.writable().defaultCheckMemPool = v }

func (u *UnitTestParams) SetAllowMinDifficultyBlocks(v bool) {
	u.writable().allowMinDifficultyBlocks = v
}

func (u *UnitTestParams) SetSkipProofOfWorkCheck(v bool) { u.writable().skipProofOfWorkCheck = v }

// defaultRegistry backs the package level functions.
var defaultRegistry *Registry

func init() {
	r, err := NewRegistry()
	if err != nil {
		// The hard-coded parameters are inconsistent, nothing can run.
		panic(err)
	}
	defaultRegistry = r
}

// SelectParams selects the network of the process.  See Registry.Select.
func SelectParams(net Network) error {
	return defaultRegistry.Select(net)
}

// ActiveParams returns the parameters of the selected network.  See
// Registry.Active.
func ActiveParams() *Params {
	return defaultRegistry.Active()
}

// ParamsFor returns the parameters of any supported network.
func ParamsFor(net Network) *Params {
	return defaultRegistry.ParamsFor(net)
}

// ModifiableParams returns write access to the unit test network parameters.
// See Registry.ModifiableParams.
func ModifiableParams() *UnitTestParams {
	return defaultRegistry.ModifiableParams()
}
