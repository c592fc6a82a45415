package main

import (
	"os"

	"github.com/hashicorp-forge/taskcloud/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
