package main

import "github.com/theirongolddev/goalpace/cmd"

func main() {
	cmd.Execute()
}
