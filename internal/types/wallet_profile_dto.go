package types

// WalletLinkReq links an additional wallet to the actor's account. The
// signature must cover an issued challenge, same as wallet login.
type WalletLinkReq struct {
	WalletAddress string `json:"walletAddress"`
	ChallengeId   string `json:"challengeId"`
	Signature     string `json:"signature"`
	WalletKind    string `json:"walletKind,options=metamask|walletconnect|exchange|hardware|other,default=metamask"`
}

// WalletProfileIdReq addresses a single wallet profile.
type WalletProfileIdReq struct {
	Id int64 `path:"id"`
}

// WalletProfileInfo is the owner view of a linked wallet.
type WalletProfileInfo struct {
	Id              int64  `json:"id"`
	UserId          int64  `json:"userId"`
	WalletAddress   string `json:"walletAddress"`
	WalletKind      string `json:"walletKind"`
	IsPrimary       bool   `json:"isPrimary"`
	ReputationScore int    `json:"reputationScore"`
	TxCount         int64  `json:"txCount"`
	CreatedAt       int64  `json:"createdAt"`
}

// WalletProfileListResp lists the actor's linked wallets.
type WalletProfileListResp struct {
	List []WalletProfileInfo `json:"list"`
}
