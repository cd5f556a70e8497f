package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/pdict/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run [FILE]",
	Short: "Run a script (from stdin if FILE is omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var script io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			script = f
		}
		return runScript(script, cmd.OutOrStdout(), viper.GetBool("check"), viper.GetBool("stats"))
	},
}

func runScript(script io.Reader, out io.Writer, check, stats bool) error {
	s := session.New(out, session.AutoCheck(check))
	if err := s.Run(script); err != nil {
		return err
	}
	if !stats {
		return nil
	}
	for _, name := range s.Names() {
		v, _ := s.Version(name)
		st := v.Stats()
		fmt.Fprintf(out, "%-12s size=%d table=%d edits=%d rotations=%d distance=%d\n",
			name, st.Size, st.TableSize, st.Edits, st.Rotations, st.Distance)
	}
	return nil
}
