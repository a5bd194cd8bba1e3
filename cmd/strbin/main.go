// Command strbin converts stdin to and from binary-digit or hex text.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/strbin"
	"github.com/zoobzio/strbin/internal/config"
)

var errMissingCommand = errors.New("a subcommand is required (encode or decode)")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	app := newApp(in, out, errOut)
	if err := app.RunContext(context.Background(), append([]string{app.Name}, args...)); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

// session carries state resolved in Before into the subcommand actions.
type session struct {
	log    *logrus.Logger
	format strbin.Format
	rev    bool
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	s := &session{log: logrus.New()}
	s.log.SetOutput(errOut)

	return &cli.App{
		Name:      "strbin",
		Usage:     "convert data to and from binary-digit or hex strings",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "reverse bit order (bin) or nibble order (hex) within each byte",
			},
			&cli.BoolFlag{
				Name:    "hex",
				Aliases: []string{"x"},
				Usage:   "use hex instead of binary digits",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with default format, reverse and log_level",
				EnvVars: []string{"STRBIN_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output to stderr",
			},
		},
		Before: s.setup,
		Action: func(c *cli.Context) error {
			_ = cli.ShowAppHelp(c)
			return errMissingCommand
		},
		Commands: []*cli.Command{
			{
				Name:   "encode",
				Usage:  "read data from stdin and write obfuscated string to stdout",
				Action: s.encode,
			},
			{
				Name:   "decode",
				Usage:  "read obfuscated string from stdin and write data to stdout",
				Action: s.decode,
			},
		},
		// Errors are reported by run, which owns the exit status.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// setup merges the config file with explicitly set flags.
func (s *session) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Bool("verbose") {
		level = logrus.DebugLevel
	}
	s.log.SetLevel(level)

	s.format, err = cfg.ParsedFormat()
	if err != nil {
		return err
	}
	if c.IsSet("hex") {
		s.format = strbin.FormatBinary
		if c.Bool("hex") {
			s.format = strbin.FormatHex
		}
	}

	s.rev = cfg.Reverse
	if c.IsSet("reverse") {
		s.rev = c.Bool("reverse")
	}

	s.log.WithFields(logrus.Fields{
		"format":   s.format,
		"reversed": s.rev,
		"config":   c.String("config"),
	}).Debug("resolved options")
	return nil
}

func (s *session) codec() (strbin.Codec, error) {
	return strbin.Use(s.format, strbin.WithReversal(s.rev))
}

func (s *session) encode(c *cli.Context) error {
	codec, err := s.codec()
	if err != nil {
		return err
	}

	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	text := codec.Encode(c.Context, data)
	s.log.WithField("bytes", len(data)).Debug("encoded")

	_, err = io.WriteString(c.App.Writer, text)
	return err
}

func (s *session) decode(c *cli.Context) error {
	codec, err := s.codec()
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	text := strings.TrimSpace(string(raw))
	data, err := codec.Decode(c.Context, text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"format": s.format,
			"length": len(text),
		}).WithError(err).Debug("decode failed")
		return err
	}
	s.log.WithField("bytes", len(data)).Debug("decoded")

	_, err = c.App.Writer.Write(data)
	return err
}
