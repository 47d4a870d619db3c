// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/specvis/formats/wav"
	"github.com/ik5/specvis/internal/logging"
	"github.com/ik5/specvis/signal"
	"github.com/ik5/specvis/utils"
)

// DefaultSignalFile is written by gen-signal when no path is given.
const DefaultSignalFile = "test_signal.wav"

func (a *app) newGenSignalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-signal [file]",
		Short: "Write a 10 second three tone test signal",
		Long: fmt.Sprintf(`Write a %d second, %d Hz, 16 bit mono WAV file holding a %d Hz tone
throughout, %d Hz in the first half and %d Hz in the second half.`,
			signal.DefaultSeconds, signal.DefaultSampleRate,
			int(signal.LowTone), int(signal.MidTone), int(signal.HighTone)),
		Args: cobra.MaximumNArgs(1),
		RunE: a.runGenSignal,
	}
}

func (a *app) runGenSignal(_ *cobra.Command, args []string) (err error) {
	path := DefaultSignalFile
	if len(args) > 0 {
		path = args[0]
	}
	a.log = a.log.WithFields(logging.Fields{"file": path})

	samples := signal.ThreeTone(signal.DefaultSampleRate, signal.DefaultSeconds)
	pcm := utils.Float32sToInt16(nil, samples)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if err := wav.WriteWAV16(f, signal.DefaultSampleRate, 1, pcm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	a.log.Info("wrote test signal", logging.Fields{
		"samples": utils.FormatSamples(uint64(len(pcm))),
		"seconds": signal.DefaultSeconds,
	})
	return nil
}
