package main

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/iotaledger/balancedternary/plugins"
)

func main() {
	node.Run(
		plugins.Core,
		plugins.WebAPI,
	)
}
