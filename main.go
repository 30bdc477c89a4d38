package main

import "jacket-manager/cmd"

func main() {
	cmd.Execute()
}
