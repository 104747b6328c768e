/* main.go */

package main

import (
	"github.com/keysmith/keysmith/cmd"
	"github.com/keysmith/keysmith/pkg/logger"
	"github.com/keysmith/keysmith/pkg/telemetry"
)

func main() {
	logger.InitializeWithFallback()
	if err := telemetry.Init("keysmith"); err != nil {
		logger.L().Warn("Telemetry disabled: " + err.Error())
	}

	cmd.Execute()
}
