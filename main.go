package main

import "move-clipper/cmd"

func main() {
	cmd.Execute()
}
