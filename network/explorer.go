package network

import (
	"sort"

	"github.com/pkg/errors"
)

// SystemDefaultExplorer is the explorer entry that hands blockchain: URIs to
// whatever handler the platform has registered for them.
const SystemDefaultExplorer = "system default"

// ErrUnknownExplorer is returned when a network has no explorer with the
// requested name.
var ErrUnknownExplorer = errors.New("unknown block explorer")

// BlockExplorer is a web explorer: item URLs are the base URL followed by
// the path of the item kind and the item itself.
type BlockExplorer struct {
	URL      string
	TxPath   string
	AddrPath string
}

// PaymentRequestTypes are the BIP70 identifiers of a network.
type PaymentRequestTypes struct {
	PKIType string
	Request string
	Payment string
	Ack     string
}

// TxURL returns the page of txid on the named explorer.
func (p *Params) TxURL(explorer, txid string) (string, error) {
	be, err := p.explorer(explorer)
	if err != nil {
		return "", err
	}
	return be.URL + be.TxPath + txid, nil
}

// AddrURL returns the page of addr on the named explorer.
func (p *Params) AddrURL(explorer, addr string) (string, error) {
	be, err := p.explorer(explorer)
	if err != nil {
		return "", err
	}
	return be.URL + be.AddrPath + addr, nil
}

// ExplorerNames returns the sorted names of the network explorers.
func (p *Params) ExplorerNames() []string {
	names := make([]string, 0, len(p.BlockExplorers))
	for name := range p.BlockExplorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Params) explorer(name string) (BlockExplorer, error) {
	be, ok := p.BlockExplorers[name]
	if !ok {
		return BlockExplorer{}, errors.Wrapf(ErrUnknownExplorer, "%s: %q", p.Name, name)
	}
	return be, nil
}

func paymentRequestTypes(name, pki string) PaymentRequestTypes {
	return PaymentRequestTypes{
		PKIType: pki,
		Request: "application/" + name + "-paymentrequest",
		Payment: "application/" + name + "-payment",
		Ack:     "application/" + name + "-paymentack",
	}
}

var (
	bitcoinPaymentRequest = paymentRequestTypes("bitcoin", "dnssec+btc")

	bitcoinExplorers = map[string]BlockExplorer{
		"Bitupper Explorer":      {"https://bitupper.com/en/explorer/bitcoin/", "transactions/", "addresses/"},
		"Bitflyer.jp":            {"https://chainflyer.bitflyer.jp/", "Transaction/", "Address/"},
		"Blockchain.info":        {"https://blockchain.com/btc/", "tx/", "address/"},
		"blockchainbdgpzk.onion": {"https://blockchainbdgpzk.onion/", "tx/", "address/"},
		"Blockstream.info":       {"https://blockstream.info/", "tx/", "address/"},
		"Bitaps.com":             {"https://btc.bitaps.com/", "", ""},
		"BTC.com":                {"https://btc.com/", "", ""},
		"Chain.so":               {"https://www.chain.so/", "tx/BTC/", "address/BTC/"},
		"Insight.is":             {"https://insight.bitpay.com/", "tx/", "address/"},
		"TradeBlock.com":         {"https://tradeblock.com/blockchain/", "tx/", "address/"},
		"BlockCypher.com":        {"https://live.blockcypher.com/btc/", "tx/", "address/"},
		"Blockchair.com":         {"https://blockchair.com/bitcoin/", "transaction/", "address/"},
		"blockonomics.co":        {"https://www.blockonomics.co/", "api/tx?txid=", "#/search?q="},
		"OXT.me":                 {"https://oxt.me/", "transaction/", "address/"},
		"smartbit.com.au":        {"https://www.smartbit.com.au/", "tx/", "address/"},
		"mynode.local":           {"http://mynode.local:3002/", "tx/", "address/"},
		SystemDefaultExplorer:    {"blockchain:/", "tx/", "address/"},
	}

	bitcoinTestExplorers = map[string]BlockExplorer{
		"Bitaps.com":          {"https://tbtc.bitaps.com/", "", ""},
		"BlockCypher.com":     {"https://live.blockcypher.com/btc-testnet/", "tx/", "address/"},
		"Blockchain.info":     {"https://www.blockchain.com/btctest/", "tx/", "address/"},
		"Blockstream.info":    {"https://blockstream.info/testnet/", "tx/", "address/"},
		"smartbit.com.au":     {"https://testnet.smartbit.com.au/", "tx/", "address/"},
		SystemDefaultExplorer: {"blockchain://000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943/", "tx/", "address/"},
	}

	namecoinExplorers = map[string]BlockExplorer{
		"Cyphrs.com": {"https://namecoin.cyphrs.com/", "tx/", "address/"},
		"Namecha.in (non-libre; wiretapped by Cloudflare; discriminates against Tor)":                         {"https://namecha.in/", "tx/", "address/"},
		"Bchain.info (non-libre; no name support)":                                                            {"https://bchain.info/NMC/", "tx/", "addr/"},
		"BitInfoCharts.com (non-libre; wiretapped by Cloudflare; discriminates against Tor; no name support)": {"https://bitinfocharts.com/namecoin/", "tx/", "address/"},
		"mynode.local":        {"http://mynode.local:3002/", "tx/", "address/"},
		SystemDefaultExplorer: {"blockchain:/", "tx/", "address/"},
	}

	crowncoinExplorers = map[string]BlockExplorer{
		"CryptoID.info":       {"https://chainz.cryptoid.info/crw/", "tx.dws?", "address.dws?"},
		SystemDefaultExplorer: {"blockchain:/", "tx/", "address/"},
	}

	donuExplorers = map[string]BlockExplorer{
		"CryptoID.info":       {"https://chainz.cryptoid.info/donu/", "tx.dws?", "address.dws?"},
		SystemDefaultExplorer: {"blockchain:/", "tx/", "address/"},
	}

	abosomExplorers = map[string]BlockExplorer{
		SystemDefaultExplorer: {"blockchain:/", "tx/", "address/"},
	}
)
