package main

import "github.com/arl/go-terra/cmd/terra/cmd"

func main() {
	cmd.Execute()
}
