package main

import "github.com/modelum/modelum/cmd"

func main() {
	cmd.Execute()
}
