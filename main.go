package main

import "github.com/ecamli/habitr/cmd"

func main() {
	cmd.Execute()
}
