package filehandler

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/formatter"
	"github.com/Philipp01105/clog/handler"
)

const (
	// DefaultBufferSize is the line buffer size used when
	// Config.BufferSize is not set
	DefaultBufferSize = 200

	// backupTimeFormat sorts lexically in time order
	backupTimeFormat = "2006-01-02T15-04-05.000000000"

	writeBufferSize = 4096
)

// ErrClosed is returned when writing to a closed handler
var ErrClosed = errors.New("filehandler: closed")

// Config holds configuration for file handler
type Config struct {
	// Filename is the path to the log file
	Filename string
	// BufferSize is the size of the line buffer (default: DefaultBufferSize)
	BufferSize int
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// Formatter renders the line (default: plain TextFormatter)
	Formatter formatter.Formatter
	// Stats receives write failures (default: a private Stats)
	Stats *handler.Stats
}

// FileHandler appends formatted lines to a file and rotates it by size.
// Output is buffered; call Sync to flush it. It may be shared by several
// contexts.
type FileHandler struct {
	mu          sync.Mutex
	filename    string
	file        *os.File
	bufWriter   *bufio.Writer
	formatter   formatter.Formatter
	line        []byte
	maxSize     int64
	maxBackups  int
	currentSize int64
	stats       *handler.Stats
	err         error
	closed      bool

	now func() time.Time
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.BufferSize < 2 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Stats == nil {
		cfg.Stats = handler.NewStats()
	}
}

// New opens cfg.Filename for appending, creating it and its directory
// when needed.
func New(cfg Config) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filehandler: filename is required")
	}
	if cfg.MaxSize < 0 || cfg.MaxBackups < 0 {
		return nil, fmt.Errorf("filehandler: negative rotation limits (maxSize %d, maxBackups %d)", cfg.MaxSize, cfg.MaxBackups)
	}
	applyDefaults(&cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, fmt.Errorf("filehandler: create directory: %w", err)
	}

	file, size, err := openFile(cfg.Filename)
	if err != nil {
		return nil, err
	}

	return &FileHandler{
		filename:    cfg.Filename,
		file:        file,
		bufWriter:   bufio.NewWriterSize(file, writeBufferSize),
		formatter:   cfg.Formatter,
		line:        make([]byte, cfg.BufferSize),
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		currentSize: size,
		stats:       cfg.Stats,
		now:         time.Now,
	}, nil
}

func openFile(name string) (*os.File, int64, error) {
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, 0, fmt.Errorf("filehandler: open: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, 0, multierr.Append(fmt.Errorf("filehandler: stat: %w", err), file.Close())
	}
	return file, info.Size(), nil
}

// Handle formats msg and appends it to the file. Write errors are
// recorded and can be read with Err.
func (h *FileHandler) Handle(msg *core.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		h.fail(ErrClosed)
		return
	}

	n := h.formatter.Format(h.line, msg)
	if n > len(h.line) {
		n = len(h.line)
	}
	line := h.line[:n]
	if i := bytes.IndexByte(line, 0); i >= 0 {
		line = line[:i]
	}
	if len(line) == 0 {
		return
	}

	// a failed rotation still leaves an open file unless it closed h
	if err := h.rotateIfNeeded(int64(len(line))); err != nil {
		h.fail(err)
		if h.closed {
			return
		}
	}

	written, err := h.bufWriter.Write(line)
	h.currentSize += int64(written)
	if err != nil {
		h.fail(err)
	}
}

func (h *FileHandler) fail(err error) {
	h.err = err
	h.stats.IncrementFailed()
}

// rotateIfNeeded rotates before a write of size bytes would exceed
// maxSize. A file is never rotated while empty.
func (h *FileHandler) rotateIfNeeded(size int64) error {
	if h.maxSize <= 0 || h.currentSize == 0 || h.currentSize+size <= h.maxSize {
		return nil
	}
	return h.rotate()
}

// rotate moves the current file aside and opens a fresh one. Whatever
// fails, h ends up either with an open file or closed.
func (h *FileHandler) rotate() error {
	if err := multierr.Combine(h.bufWriter.Flush(), h.file.Sync(), h.file.Close()); err != nil {
		// the file is closed either way; keep logging to the same name
		return multierr.Append(fmt.Errorf("filehandler: rotate: %w", err), h.reopen())
	}

	rotatedName := h.filename + "." + h.now().Format(backupTimeFormat)
	renameErr := os.Rename(h.filename, rotatedName)

	if err := h.reopen(); err != nil {
		return multierr.Append(renameErr, err)
	}
	if renameErr != nil {
		return fmt.Errorf("filehandler: rotate: %w", renameErr)
	}

	if h.maxBackups > 0 {
		return h.cleanupOldBackups()
	}
	return nil
}

// reopen opens h.filename again and points the write buffer at it,
// discarding anything still buffered. On failure h is closed.
func (h *FileHandler) reopen() error {
	file, size, err := openFile(h.filename)
	if err != nil {
		h.closed = true
		return err
	}
	h.file = file
	h.bufWriter.Reset(file)
	h.currentSize = size
	return nil
}

// Backups lists the rotated files belonging to h, oldest first
func (h *FileHandler) Backups() ([]string, error) {
	dir := filepath.Dir(h.filename)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	prefix := filepath.Base(h.filename) + "."
	var backups []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if _, err := time.Parse(backupTimeFormat, name[len(prefix):]); err == nil {
			backups = append(backups, filepath.Join(dir, name))
		}
	}
	sort.Strings(backups)
	return backups, nil
}

// cleanupOldBackups removes old backup files based on MaxBackups
func (h *FileHandler) cleanupOldBackups() error {
	backups, err := h.Backups()
	if err != nil {
		return err
	}
	if len(backups) <= h.maxBackups {
		return nil
	}

	var errs error
	for _, name := range backups[:len(backups)-h.maxBackups] {
		errs = multierr.Append(errs, os.Remove(name))
	}
	return errs
}

// Adapter returns an adapter delivering to h. filter may be nil.
func (h *FileHandler) Adapter(filter core.Filter) core.Adapter {
	return handler.NewAdapter(h, filter)
}

// Err returns the last write error
func (h *FileHandler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Sync flushes buffered lines and commits the file to stable storage
func (h *FileHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	return multierr.Append(h.bufWriter.Flush(), h.file.Sync())
}

// Close flushes, syncs and closes the file. Closing twice is a no-op.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	return multierr.Combine(h.bufWriter.Flush(), h.file.Sync(), h.file.Close())
}
