// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "vector",
		Usage: "vector arithmetic and serialization",
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "exercise every vector operation and codec",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Value:   "vector",
						Usage:   "file to write the binary vector to",
					},
				},
				Action: func(c *cli.Context) error {
					return demo(c.String("file"), os.Stdin, os.Stdout)
				},
			},
			{
				Name:  "encode",
				Usage: "read a text vector and write it in binary form",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"out", "o"},
						Value:   "vector.bin",
						Usage:   "name of the file to write the vector to",
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file to read from (default is stdin)",
					},
					&cli.BoolFlag{
						Name:  "checksum",
						Value: true,
						Usage: "whether to append a checksum after the elements",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}
					var reader io.Reader
					if c.IsSet("input") {
						f, err := os.Open(c.String("input"))
						if err != nil {
							return err
						}
						reader = f
						defer f.Close()
					} else {
						reader = os.Stdin
					}
					return encode(reader, c.String("output"), c.Bool("checksum"))
				},
			},
			{
				Name:  "decode",
				Usage: "read a binary vector and print it in text form",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file containing the binary vector",
					},
				},
				Action: func(c *cli.Context) error {
					return decode(c.String("input"), os.Stdout)
				},
			},
			{
				Name:  "describe",
				Usage: "read the header from a binary vector and describe it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file containing the binary vector",
					},
				},
				Action: func(c *cli.Context) error {
					return describe(c.String("input"), os.Stdout)
				},
			},
			{
				Name:      "dot",
				Usage:     "print the dot product of two text vectors",
				ArgsUsage: `"<dim> <e0> ..." "<dim> <e0> ..."`,
				Action: func(c *cli.Context) error {
					return dot(c.Args().Slice(), os.Stdout)
				},
			},
			{
				Name:      "sum",
				Usage:     "print the sum of two text vectors",
				ArgsUsage: `"<dim> <e0> ..." "<dim> <e0> ..."`,
				Action: func(c *cli.Context) error {
					return sum(c.Args().Slice(), os.Stdout)
				},
			},
			{
				Name:      "scale",
				Usage:     "print a text vector multiplied by a scalar",
				ArgsUsage: `"<dim> <e0> ..." <scalar>`,
				Action: func(c *cli.Context) error {
					return scale(c.Args().Slice(), os.Stdout)
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
