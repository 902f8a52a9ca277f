package main

import "github.com/richardhedges/GitAiMsg/cmd"

func main() {
	cmd.Execute()
}
