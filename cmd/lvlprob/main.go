// SPDX-License-Identifier: MIT

// Command lvlprob creates, inspects and demonstrates probability tables.
//
//	lvlprob new --layout layout.yaml --init random --seed 7 -o p.txt
//	lvlprob inspect p.txt q.txt --json
//	lvlprob demo
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlprob/internal/logger"
)

var version = "0.1.0"

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		logger.Get().Error("command failed", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
