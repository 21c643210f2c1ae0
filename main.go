package main

import (
	"flag"
	"fmt"

	"chainboard/internal/config"
	"chainboard/internal/handler"
	"chainboard/internal/result"
	"chainboard/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var configFile = flag.String("f", "etc/chainboard.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// Every error leaves the boundary as a {success,data,error} envelope.
	httpx.SetErrorHandlerCtx(result.ErrorHandler)

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
