package main

import (
	"github.com/LeJamon/xrplprep/internal/cli"
)

func main() {
	cli.Execute()
}
