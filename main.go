package main

import "github.com/stevehiehn/win10to8/cmd"

func main() {
	cmd.Execute()
}
