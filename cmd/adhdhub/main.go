package main

import "github.com/nfrund/adhdhub/cmd/adhdhub/cmd"

func main() {
	cmd.Execute()
}
