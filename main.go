package main

import "github.com/moyu-x/organized-file/cmd"

func main() {
	cmd.Execute()
}
