package main

import (
	"github/uniagent/go-broker/cmd"
)

func main() {
	cmd.Execute()
}
