package main

import "fundwarrior/cmd"

func main() {
	cmd.Execute()
}
