package main

import "github.com/OpenTraceLab/OpenTraceSVF/cmd/svf/cmd"

func main() {
	cmd.Execute()
}
