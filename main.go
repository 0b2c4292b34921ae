package main

import "github.com/cwel/imgtab/cmd"

func main() {
	cmd.Execute()
}
