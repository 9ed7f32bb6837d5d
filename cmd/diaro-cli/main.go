package main

import "diaro/cmd/diaro-cli/cmd"

func main() {
	cmd.Execute()
}
