package main

import (
	"os"

	tiny64cmd "github.com/rzbill/tiny64/internal/cmd/tiny64"
)

func main() {
	os.Exit(tiny64cmd.Main(os.Args[1:], tiny64cmd.Options{}))
}
