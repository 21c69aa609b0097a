package main

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/kaiakz/bsdelta/bsync"
	"github.com/kaiakz/bsdelta/logger"
	"github.com/kaiakz/bsdelta/storage"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Settings is resolved once per invocation and never mutated afterwards.
type Settings struct {
	Log         logger.Config
	BlockSize   uint64
	CatalogPath string
	Storage     storage.Config
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.debug", false)
	v.SetDefault("log.format", "human")
	v.SetDefault("log.file", "")
	v.SetDefault("checksum.block_size", bsync.DefaultBlockSize)
	v.SetDefault("catalog.path", "")
	v.SetDefault("storage.backend", "none")
	v.SetDefault("storage.minio.location", "us-east-1")

	v.SetEnvPrefix("BSDELTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads cfgFile, or config.toml from the working directory when
// cfgFile is empty. A missing default config file is not an error.
func loadConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config") // name of config file (without extension)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return bsync.WithKind(bsync.KindConfiguration, errors.Wrap(err, "reading config"))
	}
	return nil
}

func resolveSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		Log: logger.Config{
			Debug:  v.GetBool("log.debug"),
			Format: v.GetString("log.format"),
			File:   v.GetString("log.file"),
		},
		BlockSize:   v.GetUint64("checksum.block_size"),
		CatalogPath: v.GetString("catalog.path"),
		Storage: storage.Config{
			Backend:  v.GetString("storage.backend"),
			LocalDir: v.GetString("storage.local.dir"),
			Minio: storage.MinioConfig{
				Endpoint:        v.GetString("storage.minio.endpoint"),
				AccessKeyID:     v.GetString("storage.minio.access_key"),
				SecretAccessKey: v.GetString("storage.minio.secret_key"),
				Bucket:          v.GetString("storage.minio.bucket"),
				Prefix:          v.GetString("storage.minio.prefix"),
				Secure:          v.GetBool("storage.minio.secure"),
				Location:        v.GetString("storage.minio.location"),
			},
		},
	}
	if s.Log.Format != "human" && s.Log.Format != "json" {
		return s, bsync.Errorf(bsync.KindConfiguration, "log format must be human or json, got %q", s.Log.Format)
	}
	if s.BlockSize == 0 {
		return s, bsync.Errorf(bsync.KindConfiguration, "checksum.block_size must be positive")
	}
	return s, nil
}

const sampleConfig = `title = "configuration of bsdelta"

[log]
  debug = false
  format = "human"   # human or json
  file = ""

[checksum]
  block_size = 4096

# remembers every delta built on this host, empty disables it
[catalog]
  path = ".bsdelta/catalog.db"

# where finished deltas are published: none, local, minio or null
[storage]
  backend = "none"
  [storage.local]
    dir = "published"
  [storage.minio]
    endpoint = "127.0.0.1:9000"
    access_key = "minioadmin"
    secret_key = "minioadmin"
    bucket = "deltas"
    prefix = ""
    secure = false
`

// createSampleConfig writes a sample config to path unless a file already exists there.
func createSampleConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return bsync.Errorf(bsync.KindConfiguration, "%s already exists", path)
	}
	if err := ioutil.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return bsync.WithKind(bsync.KindOpen, errors.Wrap(err, "can't create a sample of config"))
	}
	return nil
}
