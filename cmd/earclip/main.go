package main

import "github.com/arl/go-earclip/cmd/earclip/cmd"

func main() {
	cmd.Execute()
}
