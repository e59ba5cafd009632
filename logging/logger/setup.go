package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ncobase/feature/logging/logger/config"
)

// OptionsFromConfig builds the options shared by every feature logger:
// output, format, desensitization and search hooks. The returned cleanup
// closes any opened log file.
func OptionsFromConfig(cfg *config.Config) (Options, func(), error) {
	noop := func() {}
	if cfg == nil {
		return Options{}, noop, fmt.Errorf("logger config is nil")
	}

	opts := Options{
		Level:  Level(cfg.Level),
		Format: cfg.Format,
	}
	if _, err := ParseLevel(opts.Level); err != nil {
		return Options{}, noop, err
	}

	cleanup := noop
	switch cfg.Output {
	case "", "stdout":
		opts.Output = os.Stdout
	case "stderr":
		opts.Output = os.Stderr
	case "file":
		if cfg.OutputFile == "" {
			return Options{}, noop, fmt.Errorf("logger output is file but output_file is empty")
		}
		f, err := newDailyFile(cfg.OutputFile)
		if err != nil {
			return Options{}, noop, err
		}
		opts.Output = f
		cleanup = func() { _ = f.Close() }
	default:
		return Options{}, noop, fmt.Errorf("unknown logger output %q", cfg.Output)
	}

	opts.Hooks = append(opts.Hooks, NewDesensitizer(cfg.Desensitization))
	hooks, err := searchHooks(cfg)
	if err != nil {
		cleanup()
		return Options{}, noop, err
	}
	opts.Hooks = append(opts.Hooks, hooks...)

	return opts, cleanup, nil
}

// dailyFile writes to "<path>.<date>.log", switching files when the date changes.
type dailyFile struct {
	mu   sync.Mutex
	base string
	day  string
	file *os.File
	now  func() time.Time
}

var _ io.WriteCloser = (*dailyFile)(nil)

func newDailyFile(path string) (*dailyFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f := &dailyFile{base: strings.TrimSuffix(path, ".log"), now: time.Now}
	if err := f.rotate(f.now().Format("2006-01-02")); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *dailyFile) rotate(day string) error {
	if f.file != nil {
		if err := f.file.Close(); err != nil {
			return fmt.Errorf("failed to close current log file: %w", err)
		}
	}
	file, err := os.OpenFile(fmt.Sprintf("%s.%s.log", f.base, day), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	f.file = file
	f.day = day
	return nil
}

// Write implements io.Writer
func (f *dailyFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return 0, os.ErrClosed
	}
	if day := f.now().Format("2006-01-02"); day != f.day {
		if err := f.rotate(day); err != nil {
			return 0, err
		}
	}
	return f.file.Write(p)
}

// Close implements io.Closer
func (f *dailyFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}
