// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Command xlstyle applies YAML style scripts to xlsx workbooks.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/xlstyler"
	"github.com/UNO-SOFT/xlstyler/script"
	"github.com/UNO-SOFT/xlstyler/xlsx"
	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/xuri/excelize/v2"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return run(ctx, os.Args[1:], os.Stdout)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("xlstyle", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")

	app := ffcli.Command{Name: "xlstyle", FlagSet: fs,
		ShortUsage: "xlstyle [-v] <apply|csv2xlsx|show> [flags] ...",
		Options:    []ff.Option{ff.WithEnvVarPrefix("XLSTYLE")},
		Subcommands: []*ffcli.Command{
			applyCommand(stdout),
			csv2xlsxCommand(stdout),
			showCommand(stdout),
		},
		Exec: func(ctx context.Context, args []string) error {
			return flag.ErrHelp
		},
	}
	return app.ParseAndRun(ctx, args)
}

func applyCommand(stdout io.Writer) *ffcli.Command {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.String("config", "", "config file of flag values")
	flagSheet := fs.String("sheet", "", "sheet name (default: the script's, then the active sheet)")
	flagOut := fs.String("o", "", "output file name (default: overwrite the input, or stdout for a new workbook)")
	flagBucket := fs.String("s3-bucket", "", "S3 bucket to publish the output to")
	flagPrefix := fs.String("s3-prefix", "", "S3 key prefix of the published output")

	return &ffcli.Command{Name: "apply", FlagSet: fs,
		ShortUsage: "xlstyle apply [flags] script.yaml [workbook.xlsx]",
		ShortHelp:  "apply a style script to a workbook",
		Options: []ff.Option{
			ff.WithEnvVarPrefix("XLSTYLE"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ff.PlainParser),
		},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			scr, err := script.Load(args[0])
			if err != nil {
				return err
			}
			var inp string
			if len(args) > 1 {
				inp = args[1]
			}
			out := *flagOut
			if out == "" {
				if out = inp; out == "" {
					out = "-"
				}
			}
			if *flagBucket != "" && out == "-" {
				return errors.New("publishing to S3 needs an output file (-o)")
			}

			xl := excelize.NewFile()
			if inp != "" {
				xl.Close()
				if xl, err = excelize.OpenFile(inp); err != nil {
					return err
				}
			}
			defer xl.Close()

			sheetName := *flagSheet
			if sheetName == "" {
				sheetName = scr.Sheet
			}
			sh, err := openSheet(xl, sheetName, inp == "")
			if err != nil {
				return err
			}
			logger.Info("apply", "script", args[0], "input", inp, "sheet", sh.Name, "steps", len(scr.Steps))
			if err = scr.Apply(xlstyler.New(sh, xlstyler.WithLogger(logger))); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err = saveFile(xl, out, stdout); err != nil {
				return err
			}
			if *flagBucket != "" {
				key := strings.TrimPrefix(*flagPrefix+"/"+filepath.Base(out), "/")
				return publish(ctx, out, *flagBucket, key)
			}
			return nil
		},
	}
}

// openSheet returns the named sheet of xl, creating it if missing.
// An empty name selects the active sheet. In a new workbook the default
// sheet is renamed instead of adding another one.
func openSheet(xl *excelize.File, name string, isNew bool) (*xlsx.Sheet, error) {
	active := xl.GetSheetName(xl.GetActiveSheetIndex())
	if name == "" {
		name = active
	}
	idx, err := xl.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		if isNew {
			err = xl.SetSheetName(active, name)
		} else {
			logger.Info("create sheet", "name", name)
			_, err = xl.NewSheet(name)
		}
		if err != nil {
			return nil, err
		}
	}
	return xlsx.NewSheet(xl, name)
}

func saveFile(xl *excelize.File, out string, stdout io.Writer) error {
	if out == "" || out == "-" {
		_, err := xl.WriteTo(stdout)
		return err
	}
	return xl.SaveAs(out)
}

func csv2xlsxCommand(stdout io.Writer) *ffcli.Command {
	fs := flag.NewFlagSet("csv2xlsx", flag.ContinueOnError)
	flagEnc := fs.String("charset", xlstyler.EncName, "csv charset name")
	flagScript := fs.String("script", "", "style script applied to the sheets")

	return &ffcli.Command{Name: "csv2xlsx", FlagSet: fs,
		ShortUsage: "xlstyle csv2xlsx [flags] out.xlsx [sheet:]in.csv[.gz]...",
		ShortHelp:  "convert csv files to sheets of a workbook, then style them",
		Options:    []ff.Option{ff.WithEnvVarPrefix("XLSTYLE")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) < 2 {
				return flag.ErrHelp
			}
			var scr *script.Script
			if *flagScript != "" {
				var err error
				if scr, err = script.Load(*flagScript); err != nil {
					return err
				}
			}

			fn := args[0]
			var w io.Writer = stdout
			if !(fn == "" || fn == "-") {
				fh, err := os.Create(fn)
				if err != nil {
					return err
				}
				defer fh.Close()
				w = fh
			}
			xlw := xlsx.NewWriter(w)
			defer xlw.Close()

			header := xlstyler.CellStyle{Font: xlstyler.Font{Bold: true}}
			var names []string
			for i, fn := range args[1:] {
				sheetName := fmt.Sprintf("Sheet%d", i+1)
				if i := strings.IndexByte(fn, ':'); i >= 0 {
					sheetName, fn = fn[:i], fn[i+1:]
				} else if fn != "" && fn != "-" {
					sheetName = strings.TrimSuffix(strings.TrimSuffix(filepath.Base(fn), ".gz"), ".csv")
				}
				logger.Debug("copy", "file", fn, "sheet", sheetName)
				if err := xlstyler.CopyCsv(xlw, sheetName, fn, *flagEnc, header); err != nil {
					return fmt.Errorf("%q: %w", fn, err)
				}
				names = append(names, sheetName)
			}

			if scr != nil {
				if scr.Sheet != "" {
					names = []string{scr.Sheet}
				}
				for _, name := range names {
					sh, err := xlw.Sheet(name)
					if err != nil {
						return err
					}
					if err = scr.Apply(xlstyler.New(sh, xlstyler.WithLogger(logger))); err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
				}
			}
			return xlw.Close()
		},
	}
}
