package network

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be registered because one of its names is already taken.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNetwork is returned when no network is registered under the
	// requested name.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNetworkFrozen is returned by Select once the active network has
	// been selected or read.
	ErrNetworkFrozen = errors.New("active network already set")
)

var (
	registryMtx    sync.RWMutex
	registeredNets = make(map[string]*Params)
)

// Register registers the network parameters under each of the given names,
// or under params.Name when none is given. It errors with ErrDuplicateNet
// if any of the names is already registered, in which case nothing is
// registered.
//
// It is safe to call concurrently with Lookup and Names.
func Register(params *Params, names ...string) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if len(names) == 0 {
		names = []string{params.Name}
	}

	registryMtx.Lock()
	defer registryMtx.Unlock()

	for _, name := range names {
		if _, ok := registeredNets[name]; ok {
			return errors.Wrapf(ErrDuplicateNet, "%q", name)
		}
	}
	for _, name := range names {
		registeredNets[name] = params
	}
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error. This should only be called from package init
// functions.
func mustRegister(params *Params, names ...string) {
	if err := Register(params, names...); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// Lookup returns the network registered under name.
func Lookup(name string) (*Params, error) {
	registryMtx.RLock()
	defer registryMtx.RUnlock()

	params, ok := registeredNets[name]
	if !ok {
		return nil, errors.Wrapf(
			ErrUnknownNetwork, "%q, available: %s", name,
			strings.Join(names(), ", "),
		)
	}
	return params, nil
}

// Names returns the sorted list of registered network names.
func Names() []string {
	registryMtx.RLock()
	defer registryMtx.RUnlock()

	return names()
}

func names() []string {
	names := make([]string, 0, len(registeredNets))
	for name := range registeredNets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	activeMtx    sync.Mutex
	activeParams *Params
)

// Select sets the process wide active network. It can be called once,
// before any call to Active; afterwards it errors with ErrNetworkFrozen.
func Select(name string) (*Params, error) {
	activeMtx.Lock()
	defer activeMtx.Unlock()

	if activeParams != nil {
		return nil, errors.Wrapf(ErrNetworkFrozen, "%s", activeParams.Name)
	}
	params, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	activeParams = params
	return params, nil
}

// Active returns the network chosen with Select. If none was selected it
// returns BitcoinMainNet, which then becomes the active network for the rest
// of the process lifetime.
func Active() *Params {
	activeMtx.Lock()
	defer activeMtx.Unlock()

	if activeParams == nil {
		activeParams = &BitcoinMainNet
	}
	return activeParams
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&BitcoinMainNet, "Bitcoin", "Bitcoin-Mainnet")
	mustRegister(&BitcoinTestNet, "Bitcoin-Testnet")
	mustRegister(&BitcoinRegTest, "Bitcoin-Regtest")
	mustRegister(&BitcoinSimNet, "Bitcoin-Simnet")
	mustRegister(&NamecoinMainNet, "Namecoin", "Namecoin-Mainnet")
	mustRegister(&CrowncoinMainNet, "Crowncoin", "Crowncoin-Mainnet")
	mustRegister(&DonuMainNet, "Donu", "Donu-Mainnet")
	mustRegister(&AbosomMainNet, "Abosom", "Abosom-Mainnet")
}
