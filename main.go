package main

import "pitched/cmd"

func main() {
	cmd.Execute()
}
