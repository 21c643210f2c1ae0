package constant

type WalletKind string

const (
	WalletKindMetamask      WalletKind = "metamask"
	WalletKindWalletConnect WalletKind = "walletconnect"
	WalletKindExchange      WalletKind = "exchange"
	WalletKindHardware      WalletKind = "hardware"
	WalletKindOther         WalletKind = "other"
)

// SupportedWalletKinds lists all kinds a wallet profile may be created with.
var SupportedWalletKinds = []WalletKind{
	WalletKindMetamask,
	WalletKindWalletConnect,
	WalletKindExchange,
	WalletKindHardware,
	WalletKindOther,
}

// IsWalletKindSupported checks if a given kind is in the list of supported kinds.
func IsWalletKindSupported(kind string) bool {
	for _, supported := range SupportedWalletKinds {
		if string(supported) == kind {
			return true
		}
	}
	return false
}

// Verification tiers derived from on-chain activity.
const (
	TierPending  = "pending"
	TierVerified = "verified"
)

// VerifiedTxThreshold is the transaction count above which a wallet owner is
// considered verified.
const VerifiedTxThreshold = 10

// MaxReputationScore caps the reputation derived from the tx-count snapshot.
const MaxReputationScore = 100
