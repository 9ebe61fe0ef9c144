package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/bnema/kkc-shortcuts/internal/cli"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
)

var (
	logsFollow bool
	logsLines  int
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the editor log",
	Long: `Show the end of the log written by the interactive editor.

Examples:
  kkc-shortcuts logs              # last 50 lines
  kkc-shortcuts logs -n 200       # last 200 lines
  kkc-shortcuts logs -f           # follow new lines`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	path, err := cli.LogFile()
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Println(app.Theme.Subtle.Render("No log yet. Run 'kkc-shortcuts' to start the editor."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	lines, err := tailLines(file, logsLines)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(colorizeLogLine(line, app.Theme))
	}

	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(app.Theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	// followLog closes file, possibly after replacing it.
	return followLog(ctx, file, path, func(line string) {
		fmt.Println(colorizeLogLine(line, app.Theme))
	})
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// logFollower emits complete lines appended to the log file. It owns the
// handle it reads and closes it on rotation and on close.
type logFollower struct {
	path    string
	file    *os.File
	reader  *bufio.Reader
	pending strings.Builder
	emit    func(string)
}

func newLogFollower(file *os.File, path string, emit func(string)) *logFollower {
	return &logFollower{path: path, file: file, reader: bufio.NewReader(file), emit: emit}
}

// drain emits every complete line available. A trailing partial line is
// held until its newline arrives.
func (f *logFollower) drain() error {
	for {
		chunk, err := f.reader.ReadString('\n')
		f.pending.WriteString(chunk)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read log file: %w", err)
		}
		f.emit(strings.TrimRight(f.pending.String(), "\n"))
		f.pending.Reset()
	}
}

// rotate finishes the old file, including a last unterminated line, then
// switches to the file now at path.
func (f *logFollower) rotate() error {
	next, err := os.Open(f.path)
	if err != nil {
		// Not created yet; the next event retries.
		return nil
	}
	if err := f.drain(); err != nil {
		_ = next.Close()
		return err
	}
	if f.pending.Len() > 0 {
		f.emit(f.pending.String())
		f.pending.Reset()
	}
	_ = f.file.Close()
	f.file = next
	f.reader.Reset(next)
	return nil
}

func (f *logFollower) close() {
	_ = f.file.Close()
}

// followLog prints lines appended to file until ctx is done. The log
// rotator replaces the file when it grows too large, so a create event on
// path reopens it.
func followLog(ctx context.Context, file *os.File, path string, emit func(string)) error {
	follower := newLogFollower(file, path, emit)
	defer follower.close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so the rotated-in file is seen too.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch log dir: %w", err)
	}

	// Catch writes the watcher may miss on filesystems without inotify.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != path {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if err := follower.rotate(); err != nil {
					return err
				}
			}
			if err := follower.drain(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		case <-ticker.C:
			if err := follower.drain(); err != nil {
				return err
			}
		}
	}
}

// colorizeLogLine formats a zerolog JSON line, or colors a console line by
// the level it mentions.
func colorizeLogLine(line string, theme *styles.Theme) string {
	if !gjson.Valid(line) {
		switch {
		case containsAny(line, "ERR", "FTL"):
			return theme.ErrorStyle.Render(line)
		case containsAny(line, "WRN"):
			return theme.WarningStyle.Render(line)
		case containsAny(line, "DBG", "TRC"):
			return theme.Subtle.Render(line)
		default:
			return line
		}
	}

	fields := gjson.GetMany(line, "time", "level", "message", "component", "rule", "error")
	ts := fields[0].String()
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		ts = t.Format("15:04:05")
	}

	var level string
	switch fields[1].String() {
	case "fatal", "panic":
		level = theme.ErrorStyle.Render("FTL")
	case "error":
		level = theme.ErrorStyle.Render("ERR")
	case "warn":
		level = theme.WarningStyle.Render("WRN")
	case "info":
		level = theme.Highlight.Render("INF")
	case "debug":
		level = theme.Subtle.Render("DBG")
	case "trace":
		level = theme.Subtle.Render("TRC")
	default:
		level = fields[1].String()
	}

	var b strings.Builder
	b.WriteString(theme.Subtle.Render(ts))
	b.WriteString(" ")
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(fields[2].String())
	for i, name := range []string{"component", "rule", "error"} {
		if v := fields[3+i]; v.Exists() {
			b.WriteString(" ")
			b.WriteString(theme.Subtle.Render(name + "=" + v.String()))
		}
	}
	return b.String()
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
