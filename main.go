package main

import "github.com/farck/network-testing/cmd"

func main() {
	cmd.Execute()
}
