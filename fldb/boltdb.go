package fldb

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"google.golang.org/protobuf/proto"
)

//go:generate protoc -I.. --go_out=.. --go_opt=paths=source_relative fldb/entry.proto

var deltaBucket = []byte("deltas")

// Catalog remembers every delta artifact built on this host, keyed by the
// absolute output path. A later run for the same output replaces the entry.
type Catalog struct {
	db *bolt.DB
}

func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "creating catalog directory")
		}
	}
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(deltaBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating catalog bucket")
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

func key(output string) []byte {
	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}
	return []byte(output)
}

func (c *Catalog) Put(e *Entry) error {
	if e.Output == "" {
		return errors.New("catalog entry without output path")
	}
	value, err := proto.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "encoding catalog entry")
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(deltaBucket).Put(key(e.Output), value)
	})
}

// Get returns nil when output was never recorded.
func (c *Catalog) Get(output string) (*Entry, error) {
	var entry *Entry
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(deltaBucket).Get(key(output))
		if v == nil {
			return nil
		}
		entry = &Entry{}
		return proto.Unmarshal(v, entry)
	})
	return entry, err
}

func (c *Catalog) Delete(output string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(deltaBucket).Delete(key(output))
	})
}

// List returns every entry in key order.
func (c *Catalog) List() ([]*Entry, error) {
	var list []*Entry
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(deltaBucket).ForEach(func(k, v []byte) error {
			e := &Entry{}
			if err := proto.Unmarshal(v, e); err != nil {
				return errors.Wrapf(err, "decoding entry %s", k)
			}
			list = append(list, e)
			return nil
		})
	})
	return list, err
}
