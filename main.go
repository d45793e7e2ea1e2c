package main

import "kondate/cmd"

func main() {
	cmd.Execute()
}
