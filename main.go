package main

import "github.com/givihq/deliverytime/cmd"

func main() {
	cmd.Execute()
}
