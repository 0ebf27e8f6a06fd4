package main

import "github.com/mouse-blink/dataobj/cmd"

func main() {
	cmd.Execute()
}
