package main

import "github.com/OpenTraceLab/atdf2dat/cmd/atdf2dat/cmd"

func main() {
	cmd.Execute()
}
