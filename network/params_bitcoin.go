package network

import "time"

var (
	mainHDPrivateKeys = map[KeyPurpose]uint32{
		Standard:   0x0488ade4, // xprv
		P2WPKHP2SH: 0x049d7878, // yprv
		P2WSHP2SH:  0x0295b005, // Yprv
		P2WPKH:     0x04b2430c, // zprv
		P2WSH:      0x02aa7a99, // Zprv
	}
	mainHDPublicKeys = map[KeyPurpose]uint32{
		Standard:   0x0488b21e, // xpub
		P2WPKHP2SH: 0x049d7cb2, // ypub
		P2WSHP2SH:  0x0295b43f, // Ypub
		P2WPKH:     0x04b24746, // zpub
		P2WSH:      0x02aa7ed3, // Zpub
	}
	testHDPrivateKeys = map[KeyPurpose]uint32{
		Standard:   0x04358394, // tprv
		P2WPKHP2SH: 0x044a4e28, // uprv
		P2WSHP2SH:  0x024285b5, // Uprv
		P2WPKH:     0x045f18bc, // vprv
		P2WSH:      0x02575048, // Vprv
	}
	testHDPublicKeys = map[KeyPurpose]uint32{
		Standard:   0x043587cf, // tpub
		P2WPKHP2SH: 0x044a5262, // upub
		P2WSHP2SH:  0x024289ef, // Upub
		P2WPKH:     0x045f1cf6, // vpub
		P2WSH:      0x02575483, // Vpub
	}

	bitcoinUnits = []BaseUnit{
		{Name: "BTC", Decimals: 8},
		{Name: "mBTC", Decimals: 5},
		{Name: "bits", Decimals: 2},
		{Name: "sat", Decimals: 0},
	}
)

// BitcoinMainNet defines the network parameters for the main Bitcoin
// network.
var BitcoinMainNet = Params{
	Name:      "Bitcoin",
	ShortCode: "BTC",

	WIF:        0x80,
	PubKeyHash: []byte{0},
	ScriptHash: []byte{5},
	SegwitHRP:  "bc",

	HDPrivateKeys: mainHDPrivateKeys,
	HDPublicKeys:  mainHDPublicKeys,
	HDCoinType:    0,

	GenesisHash: newHashFromStr("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"),

	TargetTimespan: 14 * 24 * time.Hour,
	TargetSpacing:  10 * time.Minute,
	PowLimit:       defaultPowLimit,

	CoinbaseMaturity:    100,
	Coin:                100000000,
	TotalSupplyLimit:    21000000,
	SignedMessagePrefix: []byte("\x18Bitcoin Signed Message:\n"),
	DecimalPoint:        5,
	BaseUnits:           bitcoinUnits,
	DefaultPorts:        Ports{TCP: "50001", SSL: "50002"},
	PaymentURIScheme:    "bitcoin",
	MaxIncomingMsgSize:  1000000,

	OpenAliasPrefix: "btc",
	PaymentRequest:  bitcoinPaymentRequest,
	BlockExplorers:  bitcoinExplorers,
}

// BitcoinTestNet defines the network parameters for the Bitcoin test
// network (version 3).
var BitcoinTestNet = Params{
	Name:      "Bitcoin Testnet",
	ShortCode: "BTC",
	Testnet:   true,

	WIF:        0xef,
	PubKeyHash: []byte{111},
	ScriptHash: []byte{196},
	SegwitHRP:  "tb",

	HDPrivateKeys: testHDPrivateKeys,
	HDPublicKeys:  testHDPublicKeys,
	HDCoinType:    1,

	GenesisHash: newHashFromStr("000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943"),

	TargetTimespan: 14 * 24 * time.Hour,
	TargetSpacing:  10 * time.Minute,
	PowLimit:       defaultPowLimit,

	CoinbaseMaturity:    100,
	Coin:                100000000,
	TotalSupplyLimit:    21000000,
	SignedMessagePrefix: []byte("\x18Bitcoin Signed Message:\n"),
	DecimalPoint:        5,
	BaseUnits:           bitcoinUnits,
	DefaultPorts:        Ports{TCP: "51001", SSL: "51002"},
	PaymentURIScheme:    "bitcoin",
	MaxIncomingMsgSize:  1000000,

	DataDir:         "bitcoin-testnet",
	OpenAliasPrefix: "btc",
	PaymentRequest:  bitcoinPaymentRequest,
	BlockExplorers:  bitcoinTestExplorers,
}

// BitcoinRegTest defines the network parameters for the Bitcoin regression
// test network.
var BitcoinRegTest = Params{
	Name:      "Bitcoin Regtest",
	ShortCode: "BTC",
	Testnet:   true,

	WIF:        0xef,
	PubKeyHash: []byte{111},
	ScriptHash: []byte{196},
	SegwitHRP:  "bcrt",

	HDPrivateKeys: testHDPrivateKeys,
	HDPublicKeys:  testHDPublicKeys,
	HDCoinType:    1,

	GenesisHash: newHashFromStr("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"),

	TargetTimespan: 14 * 24 * time.Hour,
	TargetSpacing:  10 * time.Minute,
	PowLimit:       defaultPowLimit,

	CoinbaseMaturity:    100,
	Coin:                100000000,
	TotalSupplyLimit:    21000000,
	SignedMessagePrefix: []byte("\x18Bitcoin Signed Message:\n"),
	DecimalPoint:        5,
	BaseUnits:           bitcoinUnits,
	DefaultPorts:        Ports{TCP: "51001", SSL: "51002"},
	PaymentURIScheme:    "bitcoin",
	MaxIncomingMsgSize:  1000000,

	DataDir:         "bitcoin-regtest",
	OpenAliasPrefix: "btc",
	PaymentRequest:  bitcoinPaymentRequest,
	BlockExplorers:  bitcoinTestExplorers,
}

// BitcoinSimNet defines the network parameters for the btcd simulation
// test network.
var BitcoinSimNet = Params{
	Name:      "Bitcoin Simnet",
	ShortCode: "BTC",
	Testnet:   true,

	WIF:        0x64,
	PubKeyHash: []byte{0x3f},
	ScriptHash: []byte{0x7b},
	SegwitHRP:  "sb",

	HDPrivateKeys: testHDPrivateKeys,
	HDPublicKeys:  testHDPublicKeys,
	HDCoinType:    1,

	GenesisHash: newHashFromStr("683e86bd5c6d110d91b94b97137ba6bfe02dbbdb8e3dff722a669b5d69d77af6"),

	TargetTimespan: 14 * 24 * time.Hour,
	TargetSpacing:  10 * time.Minute,
	PowLimit:       defaultPowLimit,

	CoinbaseMaturity:    100,
	Coin:                100000000,
	TotalSupplyLimit:    21000000,
	SignedMessagePrefix: []byte("\x18Bitcoin Signed Message:\n"),
	DecimalPoint:        5,
	BaseUnits:           bitcoinUnits,
	DefaultPorts:        Ports{TCP: "51001", SSL: "51002"},
	PaymentURIScheme:    "bitcoin",
	MaxIncomingMsgSize:  1000000,

	DataDir:         "bitcoin-simnet",
	OpenAliasPrefix: "btc",
	PaymentRequest:  bitcoinPaymentRequest,
	BlockExplorers:  bitcoinTestExplorers,
}
