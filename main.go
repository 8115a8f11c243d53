package main

import "university-api/cmd"

func main() {
	cmd.Execute()
}
