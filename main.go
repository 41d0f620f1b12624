package main

import "github.com/Tiliavir/trivial-mood-tracker/cmd"

func main() {
	cmd.Execute()
}
