package main

import "github.com/tabvox/tabvox/cmd"

func main() {
	cmd.Execute()
}
