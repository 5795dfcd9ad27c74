package main

import (
	"cborg/cmd/cborg/cmd"
)

func main() {
	cmd.Execute()
}
