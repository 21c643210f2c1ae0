package types

// RegisterReq defines the request body for email/password registration. A
// wallet address may be linked at sign-up time.
type RegisterReq struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	WalletAddress string `json:"walletAddress,optional"`
}

// LoginReq defines the request body for email/password login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NonceReq requests a fresh login challenge for a wallet address.
type NonceReq struct {
	Address string `form:"address"`
}

// NonceResp carries the challenge the wallet must sign. The nonce inside
// Message is single-use and expires after the configured window.
type NonceResp struct {
	ChallengeId string `json:"challengeId"`
	Nonce       string `json:"nonce"`
	Message     string `json:"message"`
}

// WalletLoginReq defines the request body for wallet-signature login.
type WalletLoginReq struct {
	WalletAddress string `json:"walletAddress"`
	ChallengeId   string `json:"challengeId"`
	Signature     string `json:"signature"`
}

// UserInfo is the public projection of a user identity. It deliberately has no
// password-hash field so resolvers cannot leak one.
type UserInfo struct {
	Id               int64  `json:"id"`
	Email            string `json:"email,omitempty"`
	WalletAddress    string `json:"walletAddress,omitempty"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	VerificationTier string `json:"verificationTier"`
	AvatarUrl        string `json:"avatarUrl,omitempty"`
}

// AuthResp is returned by register, login and wallet-login.
type AuthResp struct {
	User      UserInfo `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expiresAt"`
}
