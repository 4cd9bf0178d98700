package main

import (
	"context"
	"log"
	"os"

	"github.com/pillyapp/accountd/internal/buildinfo"
	"github.com/pillyapp/accountd/internal/client/cli"
	"github.com/pillyapp/accountd/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
