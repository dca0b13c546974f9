package main

import "status-trace/cmd"

func main() {
	cmd.Execute()
}
