package main

import "github.com/tradeforge/go-opensea/cmd"

func main() {
	cmd.Execute()
}
