package main

import "matchcal/cmd"

func main() {
	cmd.Execute()
}
