// Package activerule stores the name of the rule the user last saved.
package activerule

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/filesystem"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileStore keeps the active rule name as the first line of a text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the first line of the file, trimmed. A missing file yields "".
func (s *FileStore) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.FromContext(ctx).Debug().Str("path", s.path).Msg("activerule: no file yet")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read active rule: %w", err)
	}

	line, _, _ := bufio.NewReader(bytes.NewReader(data)).ReadLine()
	return strings.TrimSpace(string(line)), nil
}

// Save replaces the file with name followed by a newline.
func (s *FileStore) Save(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("active rule name %q spans several lines", name)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create active rule dir: %w", err)
	}
	if err := filesystem.WriteFileAtomic(s.path, []byte(name+"\n"), filePerm); err != nil {
		return fmt.Errorf("write active rule: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("rule", name).Str("path", s.path).Msg("activerule: saved")
	return nil
}

var _ port.ActiveRuleStore = (*FileStore)(nil)
