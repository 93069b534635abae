package main

import "github.com/voxlingua/voxlingua/pkg/cli"

func main() {
	cli.Execute()
}
