package main

import "github.com/ThinkBotz/samattendx/cmd"

func main() {
	cmd.Execute()
}
