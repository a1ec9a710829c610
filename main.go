// Package main is the entry point for the stax application.
package main

import (
	"github.com/samber/lo"
	"github.com/stax-cli/stax/cmd"
	"github.com/stax-cli/stax/config"
	"github.com/stax-cli/stax/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
