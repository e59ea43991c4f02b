package network

import "time"

// NamecoinMainNet defines the network parameters for the main Namecoin
// network.
var NamecoinMainNet = Params{
	Name:      "Namecoin",
	ShortCode: "NMC",

	WIF:        180,
	PubKeyHash: []byte{52},
	ScriptHash: []byte{13},
	SegwitHRP:  "nc",

	HDPrivateKeys: mainHDPrivateKeys,
	HDPublicKeys:  mainHDPublicKeys,
	HDCoinType:    7,

	GenesisHash: newHashFromStr("000000000062b72c5e2ceb45fbc8587e807c155b0da735e6483dfba2f0a9c770"),

	TargetTimespan: 14 * 24 * time.Hour,
	TargetSpacing:  10 * time.Minute,
	PowLimit:       defaultPowLimit,

	AuxPow: &AuxPowParams{
		ChainID:     0x0001,
		StartHeight: 19200,
		VersionBit:  0x100,
	},
	// Retargeting hardfork applied together with AuxPoW: the first block of
	// the window is the last block of the previous one.
	Lookback: &LookbackParams{
		AfterHeight: 19200,
		ExtraBlocks: 1,
	},

	CoinbaseMaturity:    100,
	Coin:                100000000,
	TotalSupplyLimit:    21000000,
	SignedMessagePrefix: []byte("\x18Namecoin Signed Message:\n"),
	DecimalPoint:        5,
	BaseUnits: []BaseUnit{
		{Name: "NMC", Decimals: 8},
		{Name: "mNMC", Decimals: 5},
		{Name: "uNMC", Decimals: 2},
		{Name: "swartz", Decimals: 0},
	},
	DefaultPorts:       Ports{TCP: "50001", SSL: "50002"},
	PaymentURIScheme:   "namecoin",
	MaxIncomingMsgSize: 20000000,

	DataDir:        "namecoin",
	PaymentRequest: paymentRequestTypes("namecoin", ""),
	BlockExplorers: namecoinExplorers,
}

// CrowncoinMainNet defines the network parameters for the main Crown
// network. Crown uses three byte address versions, switched to DGW at
// block 1059780 and to proof-of-stake afterwards.
var CrowncoinMainNet = Params{
	Name:      "Crowncoin",
	ShortCode: "CRW",

	WIF:        0x80,
	PubKeyHash: []byte{0x01, 0x75, 0x07},
	ScriptHash: []byte{0x01, 0x74, 0xf1},

	HDPrivateKeys: map[KeyPurpose]uint32{Standard: 0x0488ade4},
	HDPublicKeys:  map[KeyPurpose]uint32{Standard: 0x0488b21e},
	HDCoinType:    72,

	GenesisHash: newHashFromStr("0000000085370d5e122f64f4ab19c68614ff3df78c8d13cb814fd7e69a1dc6da"),

	TargetTimespan: 14 * 24 * time.Hour,
	TargetSpacing:  time.Minute,
	PowLimit:       defaultPowLimit,

	AuxPow: &AuxPowParams{
		ChainID:     0x14,
		StartHeight: 45327,
		VersionBit:  0x100,
	},
	DGW: &DGWParams{
		ForkHeight: 1059780,
		PastBlocks: 24,
	},
	// The PoS fork is at 2330000, the PoW target is frozen one block
	// before it.
	Stake: &StakeParams{
		StartHeight:   2330000 - 1,
		CutoverTarget: CutoverPowLimit,
		MinWorkLimit:  stakeMinWorkLimit,
	},

	CoinbaseMaturity:    100,
	Coin:                100000000,
	TotalSupplyLimit:    21000000,
	SignedMessagePrefix: []byte("\x18Crowncoin Signed Message:\n"),
	DecimalPoint:        8,
	BaseUnits: []BaseUnit{
		{Name: "CRW", Decimals: 8},
		{Name: "mCRW", Decimals: 5},
		{Name: "uCRW", Decimals: 2},
		{Name: "swartz", Decimals: 0},
	},
	DefaultPorts:       Ports{TCP: "50001", SSL: "50002"},
	PaymentURIScheme:   "crowncoin",
	MaxIncomingMsgSize: 20000000,

	DataDir:        "crowncoin",
	PaymentRequest: paymentRequestTypes("crowncoin", ""),
	BlockExplorers: crowncoinExplorers,
}
