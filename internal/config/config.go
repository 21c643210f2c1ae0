package config

import "github.com/zeromicro/go-zero/rest"

type Config struct {
	rest.RestConf
	Postgres struct {
		DSN string
	}
	Auth struct {
		AccessSecret string
		// AccessExpire is the token lifetime in seconds. Defaults to 7 days.
		AccessExpire int64 `json:",default=604800"`
	}
	// Chain points at the JSON-RPC endpoint used as the transaction-count oracle.
	Chain struct {
		RpcUrl string `json:",optional"`
	}
	Nonce struct {
		// Expire is the login-challenge validity window in seconds.
		Expire int64 `json:",default=300"`
	}
}
