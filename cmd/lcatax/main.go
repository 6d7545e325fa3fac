// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// LCATax is a tool to infer the taxonomy
// of unclassified features
// in functional profile tables.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/lcatax/cmd/lcatax/infer"
	"github.com/js-arias/lcatax/cmd/lcatax/lineage"
	"github.com/js-arias/lcatax/cmd/lcatax/mapcmd"
)

var app = &command.Command{
	Usage: "lcatax <command> [<argument>...]",
	Short: "a tool to infer the taxonomy of unclassified features",
}

func init() {
	app.Add(infer.Command)
	app.Add(lineage.Command)
	app.Add(mapcmd.Command)
}

func main() {
	app.Main()
}
