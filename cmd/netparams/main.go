// Command netparams inspects the registered network parameters: it lists
// networks, decodes addresses and compact targets and verifies header files
// against the retarget rules of the selected network.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/address"
	"github.com/vulpemventures/go-netparams/block"
	"github.com/vulpemventures/go-netparams/headerstore"
	"github.com/vulpemventures/go-netparams/network"
	"github.com/vulpemventures/go-netparams/retarget"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		reportConfigError(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(cfg, network.Active(), os.Stdout); err != nil {
		mainLog.Errorf("%s", err)
		os.Exit(1)
	}
}

func run(cfg *config, params *network.Params, w io.Writer) error {
	if cfg.List {
		return listNetworks(w)
	}

	fmt.Fprintf(w, "network %s (%s), interval %d blocks, pow limit %08x\n",
		params.Name, params.ShortCode, params.Interval(), params.PowLimitBits())

	if cfg.Address != "" {
		if err := decodeAddress(w, cfg.Address, params); err != nil {
			return err
		}
	}
	if cfg.Bits != "" {
		if err := printTarget(w, cfg.Bits); err != nil {
			return err
		}
	}
	if cfg.Headers != "" {
		if err := connectHeaders(w, cfg, params); err != nil {
			return err
		}
	}
	return nil
}

func listNetworks(w io.Writer) error {
	for _, name := range network.Names() {
		params, err := network.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-20s %-20s %-5s testnet=%t\n",
			name, params.Name, params.ShortCode, params.Testnet)
	}
	return nil
}

func decodeAddress(w io.Writer, addr string, params *network.Params) error {
	kind, err := addressKind(addr, params)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, kind)
	if url, err := params.AddrURL(network.SystemDefaultExplorer, addr); err == nil {
		fmt.Fprintf(w, "explorer %s\n", url)
	}
	return nil
}

func addressKind(addr string, params *network.Params) (string, error) {
	if h160, err := address.DecodeP2PKH(addr, params); err == nil {
		return fmt.Sprintf("p2pkh %x", h160), nil
	}
	if h160, err := address.DecodeP2SH(addr, params); err == nil {
		return fmt.Sprintf("p2sh %x", h160), nil
	}
	if params.SegwitHRP != "" {
		segwit, err := address.FromSegwit(addr)
		if err == nil && segwit.Prefix == params.SegwitHRP {
			return fmt.Sprintf("segwit v%d %x", segwit.Version, segwit.Program), nil
		}
	}
	return "", errors.Wrapf(address.ErrInvalidAddress, "%s is not a %s address",
		addr, params.Name)
}

func printTarget(w io.Writer, bitsStr string) error {
	bits, err := strconv.ParseUint(strings.TrimPrefix(bitsStr, "0x"), 16, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid bits %s", bitsStr)
	}
	var c retarget.Compact
	fmt.Fprintf(w, "target %064x\n", c.BitsToTarget(uint32(bits)))
	return nil
}

func connectHeaders(w io.Writer, cfg *config, params *network.Params) error {
	store := headerstore.New(params)

	if cfg.Checkpoints != "" {
		f, err := os.Open(cfg.Checkpoints)
		if err != nil {
			return err
		}
		checkpoints, err := headerstore.ParseCheckpoints(f)
		f.Close()
		if err != nil {
			return err
		}
		if err := store.SetCheckpoints(checkpoints); err != nil {
			return err
		}
	}

	f, err := os.Open(cfg.Headers)
	if err != nil {
		return err
	}
	defer f.Close()

	height := cfg.StartHeight
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		header, err := block.NewHeaderFromHex(line, height)
		if err != nil {
			return errors.Wrapf(err, "header at height %d", height)
		}
		if err := store.Connect(header); err != nil {
			return err
		}
		height++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if height == cfg.StartHeight {
		return errors.Errorf("no headers in %s", cfg.Headers)
	}

	tip := store.Height()
	mainLog.Infof("connected %d headers, tip %d", height-cfg.StartHeight, tip)

	target, err := retarget.GetTarget(tip+1, params, store.Snapshot())
	if err != nil {
		return errors.Wrap(err, "next target")
	}
	fmt.Fprintf(w, "tip %d, next target %064x (bits %08x)\n",
		tip, target, store.TargetToBits(target))
	return nil
}
