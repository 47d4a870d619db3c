// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/specvis/formats"
	"github.com/ik5/specvis/internal/logging"
	"github.com/ik5/specvis/utils"
)

func (a *app) newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Describe a recording and the spectrogram it would produce",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runInfo,
	}
}

func (a *app) runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	a.log = a.log.WithFields(logging.Fields{"file": path})

	src, err := formats.Open(path)
	if err != nil {
		return err
	}
	meta := src.Metadata()
	channels := src.Channels()
	if err := src.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	params, err := a.cfg.CalcParams()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", path, meta)
	fmt.Fprintf(out, "channels: %d\n", channels)
	if meta.TotalSamples == 0 {
		fmt.Fprintln(out, "length: unknown")
		return nil
	}
	fmt.Fprintf(out, "length: %s\n", utils.FormatSamples(meta.TotalSamples))
	fmt.Fprintf(out, "spectrogram: %d frames x %d bins\n", params.Frames(int(meta.TotalSamples)), params.Bins())
	return nil
}
