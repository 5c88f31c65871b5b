package main

import "audit-manager/cmd"

func main() {
	cmd.Execute()
}
