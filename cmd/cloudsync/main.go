package main

import (
	"os"

	"github.com/makerstudio-forge/cloudsync/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
