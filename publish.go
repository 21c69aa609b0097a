package main

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/kaiakz/bsdelta/bsync"
	"github.com/kaiakz/bsdelta/fldb"
	"github.com/kaiakz/bsdelta/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

/*
After a successful run the artifact is hashed, recorded in the catalog and
handed to the configured sink. The artifact itself is already complete at
this point; a failure here exits with ExitPublish so that scripts can tell
the two situations apart.
*/
func (a *app) publish(opts bsync.Options, sum *bsync.Summary) error {
	if a.settings.CatalogPath == "" && (a.settings.Storage.Backend == "" || a.settings.Storage.Backend == "none") {
		return nil
	}

	digest, size, err := storage.DigestFile(opts.Output)
	if err != nil {
		return bsync.WithKind(bsync.KindPublish, err)
	}
	meta := storage.ArtifactMetadata{
		BlockSize: sum.Header.BlockSize,
		TotalSize: sum.Header.TotalSize,
		Blocks:    sum.Blocks,
		Records:   len(sum.Changed),
		Digest:    digest,
		UserData:  string(sum.Header.UserData),
	}

	if a.settings.CatalogPath != "" {
		if err := a.record(opts, sum, digest, size); err != nil {
			return bsync.WithKind(bsync.KindPublish, err)
		}
	}

	sink, err := storage.Open(a.settings.Storage, a.log)
	if err != nil {
		return bsync.WithKind(bsync.KindPublish, err)
	}
	if sink == nil {
		return nil
	}
	defer sink.Close()

	f, err := os.Open(opts.Output)
	if err != nil {
		return bsync.WithKind(bsync.KindPublish, err)
	}
	defer f.Close()

	name := filepath.Base(opts.Output)
	if _, err := sink.Put(name, f, size, meta); err != nil {
		return bsync.WithKind(bsync.KindPublish, errors.Wrapf(err, "publishing %s", name))
	}
	a.log.Info("artifact published",
		zap.String("backend", a.settings.Storage.Backend),
		zap.String("name", name),
		zap.String("digest", digest))
	return nil
}

func (a *app) record(opts bsync.Options, sum *bsync.Summary, digest string, size int64) error {
	catalog, err := fldb.Open(a.settings.CatalogPath)
	if err != nil {
		return err
	}
	defer catalog.Close()

	raw, err := hex.DecodeString(digest)
	if err != nil {
		return err
	}
	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return err
	}
	entry := &fldb.Entry{
		Output:       output,
		Left:         opts.LeftChecksum,
		Right:        opts.RightChecksum,
		Target:       opts.Target,
		BlockSize:    sum.Header.BlockSize,
		TotalSize:    sum.Header.TotalSize,
		BlockCount:   sum.Blocks,
		Records:      uint64(len(sum.Changed)),
		PayloadBytes: sum.PayloadBytes,
		Size:         uint64(size),
		Digest:       raw,
		Created:      time.Now().Unix(),
		UserData:     sum.Header.UserData,
	}
	if err := catalog.Put(entry); err != nil {
		return errors.Wrap(err, "recording delta in catalog")
	}
	a.log.Debug("delta recorded", zap.String("catalog", a.settings.CatalogPath), zap.String("output", output))
	return nil
}
