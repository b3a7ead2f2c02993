package files

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"
)

var C *minio.Client

func NewClient() error {
	endpoint := viper.GetString("storage.endpoint")
	if len(endpoint) == 0 {
		return fmt.Errorf("storage endpoint is not configured")
	}

	var err error
	C, err = minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			viper.GetString("storage.access_key"),
			viper.GetString("storage.secret_key"),
			"",
		),
		Secure: viper.GetBool("storage.use_ssl"),
	})

	return err
}

func bucket() string {
	return viper.GetString("storage.bucket")
}

// UploadPostImage stores a post image under a random object name and returns
// the path the post's image column will carry.
func UploadPostImage(ctx context.Context, filename string, src io.Reader, size int64) (string, error) {
	if C == nil {
		return "", fmt.Errorf("file storage is not available")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	object := fmt.Sprintf("posts/%s%s", uuid.NewString(), ext)

	if _, err := C.PutObject(ctx, bucket(), object, src, size, minio.PutObjectOptions{
		ContentType: mimeTypeOf(ext),
	}); err != nil {
		return "", fmt.Errorf("unable to store image: %v", err)
	}

	return object, nil
}

func RemovePostImage(ctx context.Context, object string) error {
	if C == nil {
		return fmt.Errorf("file storage is not available")
	}

	return C.RemoveObject(ctx, bucket(), object, minio.RemoveObjectOptions{})
}

func mimeTypeOf(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
