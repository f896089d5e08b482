package main

import "github.com/smartres/smartres/cmd"

func main() {
	cmd.Execute()
}
