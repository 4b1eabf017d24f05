package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Storage writes uploads under dir and serves them back at /uploads/{name}.
type Storage struct {
	dir string
}

func New(dir string) *Storage {
	return &Storage{dir: dir}
}

func (s *Storage) Save(_ context.Context, name string, r io.Reader) (string, error) {
	fname := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFileName(name))
	f, err := os.Create(filepath.Join(s.dir, fname))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/uploads/" + fname, nil
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := b.String()
	if out == "" || out == "." {
		out = "file"
	}
	return out
}
