package main

import (
	"github.com/frankonly/merkletree/cli"
	"github.com/frankonly/merkletree/log"
)

func main() {
	if err := cli.Init(); err != nil {
		log.New().Fatalf("failed to initialize merklecli: %v", err)
	}

	cli.Execute()
}
