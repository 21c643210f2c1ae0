// Package walletsig verifies personal-message signatures against claimed
// wallet addresses and issues login-challenge nonces.
package walletsig

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/zeromicro/go-zero/core/logx"
)

// NonceBytes is the length of the random login nonce.
const NonceBytes = 16

// IsValidAddress reports whether address parses as a hex account address.
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// Canonicalize returns the checksummed form of address, or false if the
// address is malformed.
func Canonicalize(address string) (string, bool) {
	if !common.IsHexAddress(address) {
		return "", false
	}
	return common.HexToAddress(address).Hex(), true
}

// Verify reports whether signature was produced over message by the key behind
// claimedAddress, using the personal-message signing scheme. It fails closed:
// malformed input or a recovery failure yields false, never an error.
func Verify(message, signature, claimedAddress string) bool {
	claimed, ok := Canonicalize(claimedAddress)
	if !ok {
		logx.Errorf("walletsig: malformed claimed address %q", claimedAddress)
		return false
	}

	sig, err := decodeSignature(signature)
	if err != nil {
		logx.Errorf("walletsig: malformed signature: %v", err)
		return false
	}

	// Wallets emit V as 27/28; crypto.SigToPub expects 0/1.
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		logx.Errorf("walletsig: invalid recovery id %d", sig[64])
		return false
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		logx.Errorf("walletsig: recovery failed: %v", err)
		return false
	}

	recovered := crypto.PubkeyToAddress(*pub).Hex()
	return recovered == claimed
}

func decodeSignature(signature string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return nil, err
	}
	if len(raw) != crypto.SignatureLength {
		return nil, fmt.Errorf("invalid signature length %d", len(raw))
	}
	// Copy before mutating the recovery id.
	sig := make([]byte, crypto.SignatureLength)
	copy(sig, raw)
	return sig, nil
}

// GenerateNonce returns a fresh random hex nonce for a login challenge.
func GenerateNonce() (string, error) {
	buf := make([]byte, NonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
