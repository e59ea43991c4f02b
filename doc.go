/*
Package netparams collects the consensus parameters of several Bitcoin
derived networks and the difficulty retargeting rules that go with them.

A network is described by a network.Params value. The predefined ones are
registered at init and can be looked up by name:

	params, err := network.Lookup("Crowncoin")
	if err != nil {
		return err
	}

The retarget package computes the target a header at a given height must
meet. It reads history through the retarget.HeaderSource interface, which
the headerstore package implements over an in-memory header chain:

	store := headerstore.New(params)
	for height, raw := range rawHeaders {
		header, err := block.NewHeaderFromHex(raw, uint32(height))
		if err != nil {
			return err
		}
		if err := store.Connect(header); err != nil {
			return err
		}
	}

	target, err := retarget.GetTarget(store.Height()+1, params, store.Snapshot())
	if errors.Is(err, retarget.ErrMissingHeader) {
		// sync more history and retry
	}

Addresses with single or multi byte version prefixes are handled by the
address package:

	addr, err := address.P2PKHAddress(pubKeyHash, params)
	...
	pubKeyHash, err = address.DecodeP2PKH(addr, params)

Logging is disabled by default. Packages that log expose UseLogger to plug
in a btclog.Logger:

	backend := btclog.NewBackend(os.Stderr)
	retarget.UseLogger(backend.Logger("RTGT"))
*/
package netparams
