// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rst2html converts reStructuredText to HTML.
//
// Usage:
//
//	rst2html [-data-lines] [file...]
//
// Rst2html reads the named files, or else standard input, as
// reStructuredText documents and then prints the corresponding HTML to
// standard output.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/bodiam/rst2html-fast"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rst2html: ")

	app := &cli.App{
		Name:      "rst2html",
		Usage:     "convert reStructuredText to HTML",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "data-lines",
				Usage: "annotate option lists with source line numbers",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	opts := rst.Options{AddDataLines: c.Bool("data-lines")}

	if c.NArg() == 0 {
		return do(os.Stdin, "stdin", opts)
	}
	for _, arg := range c.Args().Slice() {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		err = do(f, arg, opts)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func do(f *os.File, name string, opts rst.Options) error {
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%s: input is not valid UTF-8", name)
	}
	_, err = os.Stdout.WriteString(rst.ConvertWithOptions(string(data), opts))
	return err
}
