package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/astef/bitfield"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Log at debug level",
		EnvVars: []string{"BITFIELD_VERBOSE"},
	}
	bitsFlag = &cli.StringFlag{
		Name:     "bits",
		Usage:    "Bit field as a string of '0' and '1', highest index first",
		Required: true,
	}
)

func main() {
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.WithError(err).Fatal("Command failed")
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "bitfield"
	app.Usage = "Build, modify and inspect fixed size bit fields"
	app.Writer = out
	app.Flags = []cli.Flag{verboseFlag}
	app.Before = func(c *cli.Context) error {
		if c.Bool(verboseFlag.Name) {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:  "new",
			Usage: "Create a zeroed field and set the given indices",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "size",
					Usage:    "Number of bits",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "set",
					Usage: "Comma separated indices to set to 1",
				},
			},
			Action: func(c *cli.Context) error {
				bf, err := bitfield.New(c.Int("size"))
				if err != nil {
					return err
				}
				indices, err := parseIndices(c.String("set"))
				if err != nil {
					return err
				}
				for _, i := range indices {
					if err := bf.Set(i, 1); err != nil {
						return err
					}
				}
				log.WithField("size", bf.Size()).Debug("Created bit field")
				_, err = fmt.Fprintln(c.App.Writer, bf)
				return err
			},
		},
		{
			Name:  "flip",
			Usage: "Flip one bit, or every bit when no index is given",
			Flags: []cli.Flag{
				bitsFlag,
				&cli.IntFlag{
					Name:  "index",
					Usage: "Index of the bit to flip",
				},
			},
			Action: func(c *cli.Context) error {
				bf, err := bitfield.Parse(c.String(bitsFlag.Name))
				if err != nil {
					return err
				}
				if c.IsSet("index") {
					if err := bf.Flip(c.Int("index")); err != nil {
						return err
					}
				} else {
					bf.FlipAll()
				}
				_, err = fmt.Fprintln(c.App.Writer, bf)
				return err
			},
		},
		{
			Name:  "count",
			Usage: "Print the number of bits set to 1",
			Flags: []cli.Flag{bitsFlag},
			Action: func(c *cli.Context) error {
				bf, err := bitfield.Parse(c.String(bitsFlag.Name))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.App.Writer, bf.Count())
				return err
			},
		},
		{
			Name:  "get",
			Usage: "Print the bits of an inclusive index range",
			Flags: []cli.Flag{
				bitsFlag,
				&cli.IntFlag{Name: "from", Usage: "First index"},
				&cli.IntFlag{Name: "to", Usage: "Last index", Required: true},
			},
			Action: func(c *cli.Context) error {
				bf, err := bitfield.Parse(c.String(bitsFlag.Name))
				if err != nil {
					return err
				}
				values, err := bf.GetRange(c.Int("from"), c.Int("to"))
				if err != nil {
					return err
				}
				parts := make([]string, len(values))
				for n, v := range values {
					parts[n] = strconv.Itoa(v)
				}
				_, err = fmt.Fprintln(c.App.Writer, strings.Join(parts, " "))
				return err
			},
		},
	}
	return app
}

func parseIndices(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse index %q", f)
		}
		indices = append(indices, i)
	}
	return indices, nil
}
