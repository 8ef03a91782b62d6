package main

import "dvd-tracker/cmd"

func main() {
	cmd.Execute()
}
