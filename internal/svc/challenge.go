package svc

import (
	"fmt"

	"chainboard/internal/walletsig"

	"github.com/google/uuid"
)

// LoginChallenge is an issued, not-yet-consumed wallet login challenge. The
// wallet proves key ownership by signing Message.
type LoginChallenge struct {
	Address string
	Message string
}

// IssueChallenge stores a fresh single-use nonce bound to the canonical
// address and returns it with its challenge id.
func (s *ServiceContext) IssueChallenge(address string) (*LoginChallenge, string, string, error) {
	nonce, err := walletsig.GenerateNonce()
	if err != nil {
		return nil, "", "", err
	}

	id := uuid.NewString()
	ch := &LoginChallenge{
		Address: address,
		Message: fmt.Sprintf("Sign this message to authenticate with chainboard.\nNonce: %s", nonce),
	}
	s.NonceStore.Set(id, ch)
	return ch, id, nonce, nil
}

// GetChallenge looks up an unexpired challenge.
func (s *ServiceContext) GetChallenge(id string) (*LoginChallenge, bool) {
	v, ok := s.NonceStore.Get(id)
	if !ok {
		return nil, false
	}
	ch, ok := v.(*LoginChallenge)
	return ch, ok
}

// ConsumeChallenge removes a challenge so a captured signature cannot be
// replayed.
func (s *ServiceContext) ConsumeChallenge(id string) {
	s.NonceStore.Del(id)
}
