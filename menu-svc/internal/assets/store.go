package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"qrmenu-backend/menu-svc/internal/domain"
	"qrmenu-backend/menu-svc/internal/metrics"
)

// MinEncodedLength rejects truncated or non-image payloads before any write.
const MinEncodedLength = 100

var (
	ErrPayloadTooShort = errors.New("image payload too short")
	ErrPayloadDecode   = errors.New("image payload is not valid base64")
)

// Store keeps images under {root}/uploads/{restaurantID}/{categoryID}/.
type Store struct {
	root    string
	metrics *metrics.Recorder
}

func NewStore(root string, recorder *metrics.Recorder) *Store {
	if root == "" {
		root = "."
	}
	return &Store{root: root, metrics: recorder}
}

func (s *Store) Root() string { return s.root }

// DiskPath maps a slash-separated relative path to a path under the root.
func (s *Store) DiskPath(relativePath string) string {
	return filepath.Join(s.root, filepath.FromSlash(relativePath))
}

// EnsureDirectory creates dir and its parents; an existing dir is not an error.
func (s *Store) EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating upload directory: %w", err)
	}
	return nil
}

// SaveEncoded decodes a data-URI or raw base64 payload and writes it to
// uploads/{restaurantID}/{categoryID}/{filename}, replacing any existing
// file. It returns the canonical relative path. Errors are for logging;
// callers carry on without an image.
func (s *Store) SaveEncoded(ctx context.Context, payload string, restaurantID, categoryID int, filename string) (string, error) {
	logger := zerolog.Ctx(ctx).With().
		Int("restaurant_id", restaurantID).
		Int("category_id", categoryID).
		Str("filename", filename).
		Logger()

	data := extractBase64(payload)
	if len(data) < MinEncodedLength {
		s.metrics.AssetSaveFailed(ctx, "too_short")
		logger.Warn().Int("length", len(data)).Msg("Image payload rejected")
		return "", fmt.Errorf("%w: %d characters", ErrPayloadTooShort, len(data))
	}

	decoded, err := decodeBase64(data)
	if err != nil {
		s.metrics.AssetSaveFailed(ctx, "decode")
		logger.Warn().Err(err).Msg("Image payload rejected")
		return "", fmt.Errorf("%w: %v", ErrPayloadDecode, err)
	}

	if filename != filepath.Base(filename) || filename == "." || filename == ".." {
		s.metrics.AssetSaveFailed(ctx, "filename")
		return "", fmt.Errorf("invalid image filename %q", filename)
	}

	relDir := ScopeDir(restaurantID, categoryID)
	if err := s.EnsureDirectory(s.DiskPath(relDir)); err != nil {
		s.metrics.AssetSaveFailed(ctx, "mkdir")
		logger.Error().Err(err).Msg("Failed to create image directory")
		return "", err
	}

	relPath := relDir + "/" + filename
	if err := os.WriteFile(s.DiskPath(relPath), decoded, 0644); err != nil {
		s.metrics.AssetSaveFailed(ctx, "write")
		logger.Error().Err(err).Msg("Failed to write image")
		return "", fmt.Errorf("writing image: %w", err)
	}

	s.metrics.AssetSaved(ctx)
	logger.Debug().Str("path", relPath).Int("bytes", len(decoded)).Msg("Image saved")
	return relPath, nil
}

func extractBase64(payload string) string {
	if i := strings.Index(payload, ";base64,"); i >= 0 {
		return payload[i+len(";base64,"):]
	}
	if i := strings.Index(payload, "base64,"); i >= 0 {
		return payload[i+len("base64,"):]
	}
	return payload
}

func decodeBase64(data string) ([]byte, error) {
	data = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, data)

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return decoded, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(data); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

// Delete removes the image an entity owns. The file is only removed when
// its name starts with "{entity}_{id}." or equals the stored reference;
// anything else is left alone. Failures are logged, never returned.
func (s *Store) Delete(ctx context.Context, ref string, restaurantID, categoryID int, entity domain.EntityType, entityID int) bool {
	ref = strings.TrimSpace(ref)
	logger := zerolog.Ctx(ctx).With().
		Str("reference", ref).
		Str("entity", string(entity)).
		Int("entity_id", entityID).
		Logger()

	if ref == "" {
		return false
	}

	var relPath string
	if i := strings.Index(ref, UploadsDir+"/"); i >= 0 {
		relPath = ref[i:]
	} else {
		relPath = ScopeDir(restaurantID, categoryID) + "/" + strings.TrimPrefix(ref, "/")
	}

	diskPath := s.DiskPath(relPath)
	if !s.withinUploads(diskPath) {
		s.metrics.AssetDeleteSkipped(ctx, "outside_root")
		logger.Warn().Str("path", relPath).Msg("Refusing to delete image outside uploads")
		return false
	}

	base := filepath.Base(diskPath)
	expected := string(entity) + "_" + strconv.Itoa(entityID) + "."
	if !strings.HasPrefix(base, expected) && base != ref {
		s.metrics.AssetDeleteSkipped(ctx, "name_mismatch")
		logger.Warn().Str("path", relPath).Str("expected_prefix", expected).Msg("Skipping image delete: name does not match owner")
		return false
	}

	if err := os.Remove(diskPath); err != nil {
		reason := "remove"
		if os.IsNotExist(err) {
			reason = "missing"
		}
		s.metrics.AssetDeleteSkipped(ctx, reason)
		logger.Warn().Err(err).Str("path", relPath).Msg("Failed to delete image")
		return false
	}

	s.metrics.AssetDeleted(ctx)
	logger.Info().Str("path", relPath).Msg("Image deleted")
	return true
}

// RemoveDirIfEmpty removes uploads/{restaurantID}/{categoryID} only when it
// has no entries left.
func (s *Store) RemoveDirIfEmpty(ctx context.Context, restaurantID, categoryID int) bool {
	relDir := ScopeDir(restaurantID, categoryID)
	dir := s.DiskPath(relDir)
	logger := zerolog.Ctx(ctx).With().Str("dir", relDir).Logger()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Msg("Failed to read category directory")
		}
		return false
	}
	if len(entries) > 0 {
		logger.Debug().Int("entries", len(entries)).Msg("Category directory not empty, keeping it")
		return false
	}

	if err := os.Remove(dir); err != nil {
		logger.Warn().Err(err).Msg("Failed to remove category directory")
		return false
	}
	logger.Info().Msg("Category directory removed")
	return true
}

func (s *Store) withinUploads(diskPath string) bool {
	root := filepath.Clean(s.DiskPath(UploadsDir))
	cleaned := filepath.Clean(diskPath)
	return strings.HasPrefix(cleaned, root+string(filepath.Separator))
}
