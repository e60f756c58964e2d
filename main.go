package main

import "flowtrace/cmd"

func main() {
	cmd.Execute()
}
