package main

import "github.com/notargets/nodaldg/cmd"

func main() {
	cmd.Execute()
}
