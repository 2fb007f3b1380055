package main

import "github.com/reelmates/reelmates-client/cmd"

func main() {
	cmd.Execute()
}
