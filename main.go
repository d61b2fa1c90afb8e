package main

import (
	"github.com/sandworm/sandworm/cmd/sandworm"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	_, _ = maxprocs.Set()
	sandworm.Execute()
}
