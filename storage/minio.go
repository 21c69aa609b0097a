package storage

import (
	"io"
	"path"

	"github.com/minio/minio-go/v6"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

/*
Artifacts are stored as <prefix>/<name>. The artifact metadata (geometry,
record count, digest) is attached as user metadata so that a patching host
can check what it downloads without reading the catalog.
*/

// MinioConfig holds the connection settings of an S3 compatible endpoint.
type MinioConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Prefix          string
	Secure          bool
	Location        string
}

// S3 compatible sink
type Minio struct {
	client     *minio.Client
	bucketName string
	prefix     string
	log        *zap.Logger
}

func NewMinio(conf MinioConfig, log *zap.Logger) (*Minio, error) {
	if conf.Endpoint == "" || conf.Bucket == "" {
		return nil, errors.New("minio storage needs an endpoint and a bucket")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if conf.Location == "" {
		conf.Location = "us-east-1"
	}
	minioClient, err := minio.New(conf.Endpoint, conf.AccessKeyID, conf.SecretAccessKey, conf.Secure)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init a minio client")
	}
	// Create the bucket on first use
	if err := minioClient.MakeBucket(conf.Bucket, conf.Location); err != nil {
		exists, errBucketExists := minioClient.BucketExists(conf.Bucket)
		if errBucketExists != nil || !exists {
			return nil, errors.Wrapf(err, "creating bucket %s", conf.Bucket)
		}
		log.Debug("bucket already exists", zap.String("bucket", conf.Bucket))
	} else {
		log.Info("bucket created", zap.String("bucket", conf.Bucket))
	}

	return &Minio{
		client:     minioClient,
		bucketName: conf.Bucket,
		prefix:     conf.Prefix,
		log:        log,
	}, nil
}

func (m *Minio) Put(objectName string, content io.Reader, objectSize int64, metadata ArtifactMetadata) (written int64, err error) {
	key := m.key(objectName)
	written, err = m.client.PutObject(m.bucketName, key, content, objectSize, minio.PutObjectOptions{
		ContentType:  "application/octet-stream",
		UserMetadata: metadata.Map(),
	})
	if err != nil {
		return written, errors.Wrapf(err, "uploading %s", key)
	}
	m.log.Info("artifact uploaded",
		zap.String("bucket", m.bucketName),
		zap.String("key", key),
		zap.Int64("size", written))
	return written, nil
}

func (m *Minio) Delete(objectName string) error {
	return m.client.RemoveObject(m.bucketName, m.key(objectName))
}

func (m *Minio) Close() error {
	return nil
}

func (m *Minio) key(objectName string) string {
	if m.prefix == "" {
		return path.Base(objectName)
	}
	return path.Join(m.prefix, path.Base(objectName))
}
