package main

import "github.com/uitlabs/laptop-dataprep/cmd"

func main() {
	cmd.Execute()
}
