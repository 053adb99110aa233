package main

import "github.com/KaramelBytes/stockloom-cli/cmd"

func main() {
	cmd.Execute()
}
