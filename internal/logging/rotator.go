package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const bytesPerMB = 1024 * 1024

// LogRotator is an io.WriteCloser that renames the log file aside once it
// grows past maxSize, optionally gzips the backup, and prunes old backups.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
}

// NewLogRotator opens (appending) the log file at path.
func NewLogRotator(path string, maxSizeMB, maxBackups int, compress bool) (*LogRotator, error) {
	r := &LogRotator{
		baseDir:    filepath.Dir(path),
		baseName:   filepath.Base(path),
		maxSize:    int64(maxSizeMB) * bytesPerMB,
		maxBackups: maxBackups,
		compress:   compress,
	}

	if err := os.MkdirAll(r.baseDir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.baseDir, r.baseName)
}

func (r *LogRotator) openCurrentFile() error {
	r.currentSize = 0
	if info, err := os.Stat(r.path()); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.currentFile = nil

	backupPath := r.backupPath(time.Now())
	if err := os.Rename(r.path(), backupPath); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	// A failed compression keeps the plain backup.
	if r.compress {
		if err := compressFile(backupPath); err == nil {
			_ = os.Remove(backupPath)
		}
	}

	r.prune()
	return r.openCurrentFile()
}

// backupPath returns an unused backup name; the suffix sorts by time.
func (r *LogRotator) backupPath(now time.Time) string {
	stamp := now.Format("20060102-150405.000000000")
	candidate := fmt.Sprintf("%s.%s", r.path(), stamp)
	for i := 1; ; i++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			if _, err := os.Stat(candidate + ".gz"); os.IsNotExist(err) {
				return candidate
			}
		}
		candidate = fmt.Sprintf("%s.%s-%d", r.path(), stamp, i)
	}
}

func compressFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		_ = out.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// prune keeps the newest maxBackups backups.
func (r *LogRotator) prune() {
	if r.maxBackups <= 0 {
		return
	}

	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return
	}

	var backups []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), r.baseName+".") {
			backups = append(backups, entry.Name())
		}
	}
	if len(backups) <= r.maxBackups {
		return
	}

	// Timestamps sort lexically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.baseDir, name))
	}
}

// Close closes the current file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
