package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylekit"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile one style file to stdout",
	Long: `Compile a single YAML or JSON style file and print the stylesheet.
Reads stdin when no file is given or the file is "-".`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		name := "<stdin>"
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in, name = f, args[0]
		}

		opts := stylekit.CompileOption{
			Compact: getBoolWithFallback("build.compact", false),
			Indent:  getStringWithFallback("build.indent", ""),
		}
		prelude, _ := cmd.Flags().GetBool("prelude")
		return compileTo(cmd.OutOrStdout(), in, name, opts, prelude)
	},
}

func init() {
	f := compileCmd.Flags()
	f.Bool("compact", false, "Emit compact CSS")
	f.String("indent", "", "Indent unit for pretty CSS (default two spaces)")
	f.Bool("prelude", false, "Prepend the reset/typography prelude")
}

func compileTo(w io.Writer, r io.Reader, name string, opts stylekit.CompileOption, prelude bool) error {
	cfgs, err := stylekit.Decode(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out, err := stylekit.CompileWith(opts, cfgs...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if prelude {
		out = stylekit.DefaultPrelude + out
	}
	_, err = io.WriteString(w, out)
	return err
}
