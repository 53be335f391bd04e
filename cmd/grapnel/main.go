package main

import "github.com/kastelov/grapnel/cmd/grapnel/cmd"

func main() {
	cmd.Execute()
}
