package main

import "memofiler/cmd"

func main() {
	cmd.Execute()
}
