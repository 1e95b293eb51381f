package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/charlieparkes/textscraper/scripts/go/textscraper/position"
)

// defaultPath is where the Kinect position mapper writes its dump when run
// on the capture machine.
const defaultPath = "/mnt/c/Users/AmbientUH/AppData/Local/Packages/159eb80c-857e-4bc4-a0ba-9d5266c417ff_zkzqb6kcb8758/LocalState/debugwrite.txt"

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "textscraper",
		Short:         "Print the coordinates recorded by the Kinect position mapper",
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringP("filepath", "f", defaultPath, "path or gs:// url of the position dump")
	cmd.PersistentFlags().Bool("skip-malformed", false, "skip lines with fewer than three tokens instead of failing")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	return cmd
}

func main() {
	if err := newCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("textscraper failed")
		os.Exit(1)
	}
}

func run(c *cobra.Command, args []string) error {
	path, err := c.Flags().GetString("filepath")
	if err != nil {
		return err
	}
	skip, err := c.Flags().GetBool("skip-malformed")
	if err != nil {
		return err
	}
	verbose, err := c.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	level := zerolog.WarnLevel
	zlevel := zapcore.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
		zlevel = zapcore.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: c.ErrOrStderr()}).Level(level)
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(c.ErrOrStderr()),
		zlevel,
	))
	defer logger.Sync()

	src, err := open(c.Context(), path)
	if err != nil {
		return err
	}
	defer src.Close()

	loader := position.NewLoader(position.WithLogger(logger), position.WithSkipMalformed(skip))
	records, err := loader.Read(path, src)
	if err != nil {
		return err
	}

	return position.PrintAll(c.OutOrStdout(), records)
}
