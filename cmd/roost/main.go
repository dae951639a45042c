package main

import "roost/internal/cmd"

func main() {
	cmd.Run()
}
