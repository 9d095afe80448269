package disk

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// AudioStorage keeps lesson audio on the local filesystem under root. Stored
// paths are relative to root; absolute paths are accepted only inside it.
type AudioStorage struct {
	root string
}

func NewAudioStorage(root string) (*AudioStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve audio root %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create audio root %s: %w", abs, err)
	}
	return &AudioStorage{root: abs}, nil
}

// resolve maps a stored path onto the filesystem. Paths leaving root are
// rejected.
func (s *AudioStorage) resolve(path string) (string, bool) {
	p := filepath.FromSlash(path)
	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return "", false
		}
		p = rel
	}
	if !filepath.IsLocal(p) {
		return "", false
	}
	return filepath.Join(s.root, p), true
}

func (s *AudioStorage) OpenAudio(_ context.Context, path string) (*models.AudioAsset, error) {
	if path == "" {
		return nil, app_errors.ErrAudioNotFound
	}
	full, ok := s.resolve(path)
	if !ok {
		return nil, app_errors.ErrAudioNotFound
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, app_errors.ErrAudioNotFound
		}
		return nil, fmt.Errorf("open audio %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat audio %s: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, app_errors.ErrAudioNotFound
	}

	return &models.AudioAsset{
		Name: filepath.Base(path),
		Size: info.Size(),
		Body: f,
	}, nil
}

// SaveAudio writes r under lessons/<id>/ and returns the stored path relative
// to the root, with forward slashes.
func (s *AudioStorage) SaveAudio(_ context.Context, lessonID int64, filename string, r io.Reader, _ int64) (string, error) {
	rel := fmt.Sprintf("lessons/%d/%s%s", lessonID, uuid.NewString(), audioExt(filename))
	full, ok := s.resolve(rel)
	if !ok {
		return "", fmt.Errorf("audio path %s outside root", rel)
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("close audio file: %w", err)
	}
	return rel, nil
}

func audioExt(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ".mp3"
	}
	return ext
}
