package archive

// Config contains configuration for the S3 archive.
type Config struct {
	Bucket         string `env:"ARCHIVE_BUCKET"`
	Region         string `env:"ARCHIVE_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ARCHIVE_ACCESS_KEY_ID"`
	SecretKey      string `env:"ARCHIVE_SECRET_KEY"`
	Endpoint       string `env:"ARCHIVE_ENDPOINT"`          // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"ARCHIVE_FORCE_PATH_STYLE"` // For MinIO and friends
	Prefix         string `env:"ARCHIVE_PREFIX" envDefault:"leads/"`
}

// Enabled reports whether a bucket has been configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}
