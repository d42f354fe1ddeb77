package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/RitikRK96/esnan-digital/pkg/config"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/google/uuid"
)

type urlSigner interface {
	SignedURL(bucket, object, contentType string, expires time.Duration) (string, error)
	SignedReadURL(bucket, object string, expires time.Duration) (string, error)
	DefaultBucket() string
}

// Service exposes upload-presign semantics. Clients PUT the object straight
// to the bucket; the API never proxies file bytes.
type Service interface {
	PresignUpload(ctx context.Context, userID uuid.UUID, req PresignRequest) (*PresignResponse, error)
}

// PresignRequest asks for a signed upload URL.
type PresignRequest struct {
	Kind      string `json:"kind" validate:"required"`
	FileName  string `json:"file_name" validate:"required"`
	MimeType  string `json:"mime_type" validate:"required"`
	SizeBytes int64  `json:"size_bytes" validate:"required,gt=0"`
}

// PresignResponse carries the signed PUT URL plus the durable object URL the
// client stores in booking or profile payloads.
type PresignResponse struct {
	ObjectKey    string    `json:"object_key"`
	SignedPUTURL string    `json:"signed_put_url"`
	ObjectURL    string    `json:"object_url"`
	ContentType  string    `json:"content_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

var mimeTypesByKind = map[enums.MediaKind][]string{
	enums.MediaKindSnanPhoto: {"image/png", "image/jpeg", "image/webp"},
	enums.MediaKindProfile:   {"image/png", "image/jpeg", "image/webp"},
	enums.MediaKindProduct:   {"image/png", "image/jpeg", "image/webp", "image/gif"},
}

type service struct {
	gcs       urlSigner
	bucket    string
	uploadTTL time.Duration
	maxBytes  int64
}

// NewService constructs a media service backed by the provided GCS signer.
func NewService(gcs urlSigner, gcsCfg config.GCSConfig, mediaCfg config.MediaConfig) (Service, error) {
	if gcs == nil {
		return nil, fmt.Errorf("gcs signer required")
	}
	bucket := gcsCfg.BucketName
	if bucket == "" {
		bucket = gcs.DefaultBucket()
	}
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket required")
	}
	if gcsCfg.UploadURLExpiry <= 0 {
		return nil, fmt.Errorf("upload url expiry must be positive")
	}
	if mediaCfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	return &service{
		gcs:       gcs,
		bucket:    bucket,
		uploadTTL: gcsCfg.UploadURLExpiry,
		maxBytes:  int64(mediaCfg.MaxUploadMB) * 1024 * 1024,
	}, nil
}

func (s *service) PresignUpload(ctx context.Context, userID uuid.UUID, req PresignRequest) (*PresignResponse, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user identity missing")
	}

	kind, err := enums.ParseMediaKind(req.Kind)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid media kind")
	}

	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file_name is required")
	}
	if req.SizeBytes <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "size_bytes must be positive")
	}
	if req.SizeBytes > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("size_bytes must be at most %d", s.maxBytes))
	}

	mimeType := strings.TrimSpace(req.MimeType)
	if !isAllowedMime(kind, mimeType) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mime_type not allowed for media kind")
	}

	objectKey := buildObjectKey(kind, userID, fileName)
	signedURL, err := s.gcs.SignedURL(s.bucket, objectKey, mimeType, s.uploadTTL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sign upload url")
	}

	return &PresignResponse{
		ObjectKey:    objectKey,
		SignedPUTURL: signedURL,
		ObjectURL:    fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectKey),
		ContentType:  mimeType,
		ExpiresAt:    time.Now().Add(s.uploadTTL),
	}, nil
}

func isAllowedMime(kind enums.MediaKind, mimeType string) bool {
	allowed, ok := mimeTypesByKind[kind]
	if !ok {
		return false
	}
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, mimeType) {
			return true
		}
	}
	return false
}

func buildObjectKey(kind enums.MediaKind, userID uuid.UUID, fileName string) string {
	cleanName := sanitizeFileName(fileName)
	id := uuid.New()
	if cleanName == "" {
		cleanName = id.String()
	}
	return fmt.Sprintf("media/%s/%s/%s_%s", kind, userID.String(), id.String(), cleanName)
}

func sanitizeFileName(name string) string {
	clean := path.Base(strings.TrimSpace(name))
	if clean == "." || clean == "/" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r == '/' || r == '\\' || unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
