package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/network"
)

const (
	defaultNetwork  = "Bitcoin"
	defaultLogLevel = "info"
)

// config defines the command line options of netparams.
type config struct {
	Network     string `short:"n" long:"network" description:"Network to use, see --list"`
	List        bool   `short:"l" long:"list" description:"List the registered networks and exit"`
	Address     string `short:"a" long:"address" description:"Decode an address of the selected network"`
	Bits        string `short:"b" long:"bits" description:"Print the target encoded by compact bits, in hex"`
	Headers     string `long:"headers" description:"File with one hex header per line to connect, starting at --startheight"`
	StartHeight uint32 `long:"startheight" description:"Height of the first header in --headers"`
	Checkpoints string `long:"checkpoints" description:"JSON checkpoint file to use instead of the built in checkpoints"`
	LogLevel    string `short:"d" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

// loadConfig parses the command line and selects the active network.
func loadConfig(args []string) (*config, error) {
	cfg := &config{
		Network:  defaultNetwork,
		LogLevel: defaultLogLevel,
	}

	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	if err := setLogLevels(cfg.LogLevel); err != nil {
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	if _, err := network.Select(cfg.Network); err != nil {
		return nil, errors.Wrapf(err, "--network (known: %s)",
			strings.Join(network.Names(), ", "))
	}
	return cfg, nil
}

// reportConfigError prints an error returned by loadConfig, unless it comes
// from go-flags, which already printed it.
func reportConfigError(w io.Writer, err error) {
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) {
		return
	}
	fmt.Fprintln(w, err)
}
