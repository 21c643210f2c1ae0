// Package chain exposes the on-chain activity signal the identity layer
// consumes. Callers treat any failure as a count of zero.
package chain

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// TxCounter reports the number of transactions an address has sent.
type TxCounter interface {
	TransactionCount(ctx context.Context, address string) (uint64, error)
}

type ethTxCounter struct {
	rpcUrl string
}

// NewEthTxCounter returns a TxCounter backed by a JSON-RPC endpoint. An empty
// rpcUrl yields a counter that always errors, which callers degrade to zero.
func NewEthTxCounter(rpcUrl string) TxCounter {
	return &ethTxCounter{rpcUrl: rpcUrl}
}

func (c *ethTxCounter) TransactionCount(ctx context.Context, address string) (uint64, error) {
	if c.rpcUrl == "" {
		return 0, errors.New("chain rpc not configured")
	}

	client, err := ethclient.DialContext(ctx, c.rpcUrl)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	return client.NonceAt(ctx, common.HexToAddress(address), nil)
}
