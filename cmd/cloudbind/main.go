package main

import (
	"github.com/cloudbind/cloudbind/pkg/cli"
)

func main() {
	cli.Execute()
}
