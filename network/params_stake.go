package network

import "time"

// DonuMainNet defines the network parameters for Donu, a pure
// proof-of-stake chain. Its headers carry no PoW target history, so past
// the first interval the target is reported as zero.
var DonuMainNet = Params{
	Name:      "Donu",
	ShortCode: "DONU",

	WIF:        0x80,
	PubKeyHash: []byte{53},
	ScriptHash: []byte{5},
	SegwitHRP:  "dn",

	HDPrivateKeys: map[KeyPurpose]uint32{Standard: 0x0488ade4},
	HDPublicKeys:  map[KeyPurpose]uint32{Standard: 0x0488b21e},
	HDCoinType:    405,

	GenesisHash: newHashFromStr("000000008507af1fdaaf3fed6173005b23b0febf72e7c2094f11f1d057692182"),

	TargetTimespan: 14 * 24 * time.Hour,
	TargetSpacing:  2 * time.Minute,
	PowLimit:       defaultPowLimit,

	Stake: &StakeParams{
		StartHeight:   0,
		AlwaysActive:  true,
		CutoverTarget: CutoverZero,
		MinWorkLimit:  stakeMinWorkLimit,
	},

	CoinbaseMaturity:    100,
	Coin:                1000000,
	TotalSupplyLimit:    21000000,
	SignedMessagePrefix: []byte("\x18Donu Signed Message:\n"),
	DecimalPoint:        8,
	BaseUnits: []BaseUnit{
		{Name: "DONU", Decimals: 8},
		{Name: "mDONU", Decimals: 5},
		{Name: "uDONU", Decimals: 2},
		{Name: "satoshi", Decimals: 0},
	},
	DefaultPorts:       Ports{TCP: "50001", SSL: "50002"},
	PaymentURIScheme:   "donu",
	MaxIncomingMsgSize: 1000000,

	DataDir:         "donu",
	OpenAliasPrefix: "donu",
	PaymentRequest:  paymentRequestTypes("donu", "dnssec+donu"),
	BlockExplorers:  donuExplorers,
}

// AbosomMainNet defines the network parameters for Abosom, staking from
// block 1 on.
var AbosomMainNet = Params{
	Name:      "Abosom",
	ShortCode: "ABOSOM",

	WIF:        0x80,
	PubKeyHash: []byte{75},
	ScriptHash: []byte{78},

	HDPrivateKeys: map[KeyPurpose]uint32{Standard: 0x800001c8},
	HDPublicKeys:  map[KeyPurpose]uint32{Standard: 0x800001c8},
	HDCoinType:    704,

	GenesisHash: newHashFromStr("00000e8048ffa0a80549ed405640e95e01590e70baf4888ef594d87402635697"),

	TargetTimespan: 14 * 24 * time.Hour,
	TargetSpacing:  10 * time.Minute,
	PowLimit:       defaultPowLimit,

	Stake: &StakeParams{
		StartHeight:   1,
		CutoverTarget: CutoverZero,
		MinWorkLimit:  stakeMinWorkLimit,
	},

	CoinbaseMaturity:    8,
	Coin:                1000000,
	TotalSupplyLimit:    110000000,
	SignedMessagePrefix: []byte("\x18Abosom Signed Message:\n"),
	DecimalPoint:        8,
	BaseUnits: []BaseUnit{
		{Name: "ABOSOM", Decimals: 8},
		{Name: "mABOSOM", Decimals: 5},
		{Name: "uABOSOM", Decimals: 2},
		{Name: "satoshi", Decimals: 0},
	},
	DefaultPorts:       Ports{TCP: "50041", SSL: "50042"},
	PaymentURIScheme:   "abosom",
	MaxIncomingMsgSize: 1000000,

	DataDir:         "abosom",
	OpenAliasPrefix: "abosom",
	PaymentRequest:  paymentRequestTypes("abosom", "dnssec+abosom"),
	BlockExplorers:  abosomExplorers,
}
