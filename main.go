package main

import "github.com/averell-io/componentgen/cmd"

func main() {
	cmd.Execute()
}
