// Package filestore хранит загруженные файлы (видео уничтожения, акты)
// на локальном диске под общим корнем.
package filestore

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrExtension = errors.New("file extension not allowed")
	ErrTooLarge  = errors.New("file exceeds size limit")
	ErrEmpty     = errors.New("file is empty")
)

type Store struct {
	root string
	now  func() time.Time
}

func New(root string) *Store {
	return &Store{root: root, now: time.Now}
}

func (s *Store) Root() string {
	return s.root
}

// Extension возвращает расширение в нижнем регистре без точки, если оно в allowed.
func Extension(filename string, allowed []string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(strings.TrimSpace(filename)), "."))
	for _, a := range allowed {
		if ext == a {
			return ext, nil
		}
	}
	return "", ErrExtension
}

// SafeName оставляет в имени только буквы, цифры, '.', '-' и '_'.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}

// Stored — результат Save: имя файла и полный путь на диске.
type Stored struct {
	Name string
	Path string
	Size int64
}

// Save пишет r в <root>/<dir>/<prefix>_<время>_<uuid>.<ext>. Больше limit
// байт: файл удаляется и возвращается ErrTooLarge.
func (s *Store) Save(r io.Reader, limit int64, dir, prefix, ext string) (*Stored, error) {
	target := filepath.Join(s.root, filepath.FromSlash(dir))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}

	name := strings.Join([]string{
		SafeName(prefix),
		s.now().Format("20060102_150405"),
		uuid.NewString()[:8],
	}, "_") + "." + ext
	path := filepath.Join(target, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "create upload file")
	}

	n, err := io.Copy(f, io.LimitReader(r, limit+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = os.Remove(path)
		return nil, errors.Wrap(err, "write upload file")
	case closeErr != nil:
		_ = os.Remove(path)
		return nil, errors.Wrap(closeErr, "close upload file")
	case n > limit:
		_ = os.Remove(path)
		return nil, ErrTooLarge
	case n == 0:
		_ = os.Remove(path)
		return nil, ErrEmpty
	}
	return &Stored{Name: name, Path: path, Size: n}, nil
}

// Remove удаляет файл; отсутствие файла ошибкой не считается.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove stored file")
	}
	return nil
}

func (s *Store) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
