package interfaces

import "context"

type Uploader interface {
	UploadBytes(ctx context.Context, folder, publicID string, b []byte) (string, error)
}
