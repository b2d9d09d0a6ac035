package main

import "doclint/cmd"

func main() {
	cmd.Execute()
}
