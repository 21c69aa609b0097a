package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kaiakz/bsdelta/bsync"
	"github.com/kaiakz/bsdelta/fldb"
	"github.com/kaiakz/bsdelta/logger"
	"github.com/kaiakz/bsdelta/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "0.3.0"

// app carries the state shared by all commands of one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings Settings
	log      *zap.Logger
	out      io.Writer
}

/*
Usage: bsdelta checksum -i FILE -o FILE.sum [-b BLOCKSIZE] [-u USERDATA]
   or  bsdelta data -l OLD.sum -r NEW.sum -t NEW -o DELTA [-u USERDATA]
   or  bsdelta patch -s OLD -d DELTA -o NEW
   or  bsdelta inspect FILE
   or  bsdelta catalog list
   or  bsdelta catalog rm OUTPUT
*/
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: newViper(), out: out, log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "bsdelta",
		Short: "Block level binary deltas from per-block checksums",
		Long: `bsdelta builds a delta between two versions of a file using only the
per-block checksum files of both versions and the new file. The old file is
never read. The delta can later be applied onto the old file with "patch".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(a.v, a.cfgFile); err != nil {
				return err
			}
			settings, err := resolveSettings(a.v)
			if err != nil {
				return err
			}
			a.settings = settings
			log, err := logger.New(settings.Log)
			if err != nil {
				return bsync.WithKind(bsync.KindConfiguration, err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.log.Sync()
		},
	}
	root.SetOut(out)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return bsync.WithKind(bsync.KindConfiguration, err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./config.toml)")
	flags.Bool("debug", false, "log every differing block")
	flags.String("log-format", "human", "log format: json or human")
	flags.String("log-file", "", "also write logs to this file")
	a.v.BindPFlag("log.debug", flags.Lookup("debug"))
	a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	a.v.BindPFlag("log.file", flags.Lookup("log-file"))

	root.AddCommand(
		a.checksumCmd(),
		a.dataCmd(),
		a.patchCmd(),
		a.inspectCmd(),
		a.catalogCmd(),
		a.configCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(a.out, "bsdelta v%s (format version %d)\n", version, bsync.Version)
			},
		},
	)
	return root
}

func (a *app) checksumCmd() *cobra.Command {
	var input, output, userData string
	cmd := &cobra.Command{
		Use:   "checksum",
		Short: "Write the per-block checksum file of a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" || output == "" {
				return bsync.Errorf(bsync.KindConfiguration, "--input and --output are required")
			}
			blockSize := a.settings.BlockSize
			if cmd.Flags().Changed("block-size") {
				blockSize, _ = cmd.Flags().GetUint64("block-size")
			}
			var data []byte
			if userData != "" {
				data = []byte(userData)
			}
			start := time.Now()
			hdr, err := bsync.GenerateChecksumFile(input, output, blockSize, data)
			if err != nil {
				return err
			}
			a.log.Info("checksum file written",
				zap.String("output", output),
				zap.Stringer("header", hdr),
				zap.Duration("duration", time.Since(start)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "file to checksum (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "checksum file to create (required)")
	cmd.Flags().Uint64P("block-size", "b", bsync.DefaultBlockSize, "block size in bytes (default from config)")
	cmd.Flags().StringVarP(&userData, "user-data", "u", "", "opaque tag stored in the header")
	return cmd
}

func (a *app) dataCmd() *cobra.Command {
	var opts bsync.Options
	var userData string
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Build a delta from two checksum files and the new file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := opts
			if cmd.Flags().Changed("user-data") {
				u := userData
				run.UserData = &u
			}
			a.log.Info("building delta",
				zap.String("left", run.LeftChecksum),
				zap.String("right", run.RightChecksum),
				zap.String("target", run.Target),
				zap.String("output", run.Output))

			start := time.Now()
			sum, err := bsync.NewBuilder(run, a.log).Run()
			if err != nil {
				return err
			}
			a.log.Info("duration", zap.Duration("elapsed", time.Since(start)))
			return a.publish(run, sum)
		},
	}
	cmd.Flags().StringVarP(&opts.LeftChecksum, "left", "l", "", "checksum file of the old version (required)")
	cmd.Flags().StringVarP(&opts.RightChecksum, "right", "r", "", "checksum file of the new version (required)")
	cmd.Flags().StringVarP(&opts.Target, "target", "t", "", "the new version (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "delta file to create (required)")
	cmd.Flags().StringVarP(&userData, "user-data", "u", "", "override the user data of the right checksum file")
	return cmd
}

func (a *app) patchCmd() *cobra.Command {
	var source, delta, output string
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Rebuild the new version from the old one and a delta",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" || delta == "" || output == "" {
				return bsync.Errorf(bsync.KindConfiguration, "--source, --delta and --output are required")
			}
			hdr, n, err := bsync.PatchFile(source, delta, output)
			if err != nil {
				return err
			}
			a.log.Info("patched",
				zap.String("output", output),
				zap.Int("records", n),
				zap.Uint64("size", hdr.TotalSize))
			return nil
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "the old version (required)")
	cmd.Flags().StringVarP(&delta, "delta", "d", "", "delta built by the data command (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to create (required)")
	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	var blocks bool
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the header of a checksum or delta file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return bsync.WithKind(bsync.KindOpen, err)
			}
			defer f.Close()

			hdr, err := bsync.ReadHeader(bufio.NewReader(f))
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, hdr)
			if !blocks {
				return nil
			}
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				return bsync.WithKind(bsync.KindHeaderRead, err)
			}
			if hdr.Type == bsync.CHECKSUM {
				return a.printChecksums(bufio.NewReader(f))
			}
			return a.printRecords(bufio.NewReader(f))
		},
	}
	cmd.Flags().BoolVar(&blocks, "blocks", false, "also list every checksum or record")
	return cmd
}

func (a *app) printChecksums(r io.Reader) error {
	_, sums, err := bsync.ReadChecksums(r)
	if err != nil {
		return err
	}
	for _, s := range sums {
		fmt.Fprintf(a.out, "%d\t%d\t%d\t%08x\n", s.Index, s.FileOffset, s.ChunkLen, s.Sum1)
	}
	return nil
}

func (a *app) printRecords(r io.Reader) error {
	rr, err := bsync.NewRecordReader(r)
	if err != nil {
		return err
	}
	for {
		rec, err := rr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%d\t%d\t%08x\n", rec.Index, len(rec.Payload), bsync.Adler32(rec.Payload))
	}
}

func (a *app) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query the catalog of built deltas",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every delta recorded in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer catalog.Close()

			list, err := catalog.List()
			if err != nil {
				return bsync.WithKind(bsync.KindPublish, err)
			}
			for _, e := range list {
				fmt.Fprintf(a.out, "%s\t%s\t%d/%d blocks\t%d bytes\t%s\n",
					e.Output,
					time.Unix(e.Created, 0).UTC().Format(time.RFC3339),
					e.Records, e.BlockCount, e.Size,
					hex.EncodeToString(e.Digest))
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm OUTPUT",
		Short: "Forget a delta and remove its published copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer catalog.Close()

			entry, err := catalog.Get(args[0])
			if err != nil {
				return bsync.WithKind(bsync.KindPublish, err)
			}
			if entry == nil {
				return bsync.Errorf(bsync.KindConfiguration, "%s is not in the catalog", args[0])
			}

			sink, err := storage.Open(a.settings.Storage, a.log)
			if err != nil {
				return bsync.WithKind(bsync.KindPublish, err)
			}
			if sink != nil {
				defer sink.Close()
				if err := sink.Delete(filepath.Base(entry.Output)); err != nil {
					return bsync.WithKind(bsync.KindPublish, err)
				}
			}
			if err := catalog.Delete(entry.Output); err != nil {
				return bsync.WithKind(bsync.KindPublish, err)
			}
			a.log.Info("delta removed", zap.String("output", entry.Output))
			fmt.Fprintln(a.out, "removed", entry.Output)
			return nil
		},
	})
	return cmd
}

func (a *app) openCatalog() (*fldb.Catalog, error) {
	if a.settings.CatalogPath == "" {
		return nil, bsync.Errorf(bsync.KindConfiguration, "catalog.path is not configured")
	}
	catalog, err := fldb.Open(a.settings.CatalogPath)
	if err != nil {
		return nil, bsync.WithKind(bsync.KindOpen, err)
	}
	return catalog, nil
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a sample config.toml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := createSampleConfig(path); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "sample config written to", path)
			return nil
		},
	})
	return cmd
}
