// Package pmcalc is a desk calculator for arithmetic expressions.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/pmcalc/pmcalc/cli"
)

func main() {
	var stop context.CancelFunc
	pmcalc.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// after the first interrupt, restore default behaviour: a second one kills us
	go func() {
		<-pmcalc.SignalContext.Done()
		stop()
	}()

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "pmcalc: %v\n", r)
			pmcalc.Exit(pmcalc.ExitUnknown)
		}
	}()
	cli.Execute()
}
