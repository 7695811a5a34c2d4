package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/spatialgo/cpl"
)

// listFlags feed the render, get and count commands.
var listFlags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:    "set",
		Aliases: []string{"s"},
		Usage:   "add `ENTRY` to the list; KEY=VALUE goes through SetNameValue, anything else is appended verbatim",
	},
	&cli.StringSliceFlag{
		Name:    "options-file",
		Aliases: []string{"f"},
		Usage:   "load KEY: VALUE entries from YAML `FILE` (repeatable, applied in order)",
	},
}

// buildList assembles the list from --options-file and --set, in that
// order. File problems abort immediately; bad --set entries are collected
// so one run reports them all.
func buildList(c *cli.Context) (*cpl.StringList, error) {
	list := cpl.NewStringList()
	for _, path := range c.StringSlice("options-file") {
		if err := applyOptionsFile(list, path); err != nil {
			list.Close()
			return nil, err
		}
	}
	var errs error
	for _, entry := range c.StringSlice("set") {
		var err error
		if name, value, found := strings.Cut(entry, "="); found {
			err = list.SetNameValue(name, value)
		} else {
			err = list.AddString(entry)
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("--set %q: %w", entry, err))
		}
	}
	if errs != nil {
		list.Close()
		return nil, errs
	}
	return list, nil
}

// applyOptionsFile loads a YAML mapping and applies its entries in sorted
// key order, so a file produces the same list on every run.
func applyOptionsFile(list *cpl.StringList, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var opts map[string]string
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	keys := make([]string, 0, len(opts))
	for key := range opts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := list.SetNameValue(key, opts[key]); err != nil {
			return fmt.Errorf("%s: %s: %w", path, key, err)
		}
	}
	return nil
}

func init() {
	defineCommand(&cli.Command{
		Name:  "render",
		Usage: "Print the assembled list, one raw entry per line",
		Flags: listFlags,
		Action: func(c *cli.Context) error {
			list, err := buildList(c)
			if err != nil {
				return err
			}
			defer list.Close()
			fmt.Print(list.String())
			return nil
		},
	})

	defineCommand(&cli.Command{
		Name:      "get",
		Usage:     "Look up one key in the assembled list",
		ArgsUsage: "KEY",
		Flags:     listFlags,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one KEY argument", 2)
			}
			key := c.Args().First()
			list, err := buildList(c)
			if err != nil {
				return err
			}
			defer list.Close()
			value, ok := list.FetchNameValue(key)
			if !ok {
				return cli.Exit(fmt.Sprintf("%s: not found", key), 1)
			}
			fmt.Println(value)
			return nil
		},
	})

	defineCommand(&cli.Command{
		Name:  "count",
		Usage: "Print the number of entries in the assembled list",
		Flags: listFlags,
		Action: func(c *cli.Context) error {
			list, err := buildList(c)
			if err != nil {
				return err
			}
			defer list.Close()
			fmt.Println(list.Len())
			return nil
		},
	})
}
