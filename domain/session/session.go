package session

import (
	"github.com/x-xyz/rentableft/domain"
)

// ContextKey is where the auth middleware stores the caller's Session on the echo context
const ContextKey = "session"

// Session is the connection context of one browser wallet
type Session struct {
	Id      string         `json:"id"`
	Address domain.Address `json:"address"`
	ChainId domain.ChainId `json:"chainId"`
}

func (s Session) IsConnected() bool {
	return s.Address != ""
}

func (s Session) IsCorrectChain(target domain.ChainId) bool {
	return s.ChainId == target
}
