package main

import "github.com/anchore/osident/cmd"

func main() {
	cmd.Execute()
}
