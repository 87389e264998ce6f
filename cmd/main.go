package main

import "github.com/fyerfyer/podem-atpg/pkg/cmd"

func main() {
	cmd.Execute()
}
