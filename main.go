package main

import "github.com/gumdev/gum/cmd"

func main() {
	cmd.Execute()
}
