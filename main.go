package main

import "github.com/alde/imagepress/cmd"

func main() {
	cmd.Execute()
}
