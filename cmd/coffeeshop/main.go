package main

import "coffeeshop/internal/cmd"

func main() {
	cmd.Execute()
}
