package main

import "framescout/cmd"

func main() {
	cmd.Execute()
}
