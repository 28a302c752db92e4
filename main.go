package main

import "github.com/iksnae/arca-booking/cmd"

func main() {
	cmd.Execute()
}
