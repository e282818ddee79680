// Command dyck finds splits in Dyck path encoded tree shapes, enumerates
// shapes and validates the split scan for every integer representation.
package main

import (
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

func main() {
	err := newRootCommand().Execute()
	if logger.Sugar != nil {
		logger.OnExit()
	}
	if err != nil {
		os.Exit(1)
	}
}
