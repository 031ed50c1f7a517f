package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/config"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/controller/cli"
)

func main() {
	config, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = cli.NewRootCmd(config).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
