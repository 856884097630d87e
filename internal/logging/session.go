package logging

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// SessionLog is the JSONL file that records one interactive session.
type SessionLog struct {
	Dir  string
	ID   string
	Path string
	file *os.File
}

// NewSessionLog creates <baseDir>/<project-slug>/<session-id>.jsonl.
// A relative baseDir is resolved against workDir.
func NewSessionLog(baseDir, workDir string) (*SessionLog, error) {
	dir, err := FindLogDir(baseDir, workDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	id := sessionID()
	path := filepath.Join(dir, id+".jsonl")
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &SessionLog{Dir: dir, ID: id, Path: path, file: file}, nil
}

// Logger returns a JSON logger that appends to the session file.
func (s *SessionLog) Logger(opts Options) *log.Logger {
	opts.Formatter = log.JSONFormatter
	opts.Timestamps = true
	logger := New(s.file, opts)
	return logger.With("session", s.ID)
}

// Close closes the log file.
func (s *SessionLog) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

// FindLogDir returns the per-project log directory without creating it.
func FindLogDir(baseDir, workDir string) (string, error) {
	if baseDir == "" {
		return "", fmt.Errorf("log base dir is empty")
	}
	if workDir == "" {
		workDir = "."
	}
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}

	if !filepath.IsAbs(baseDir) {
		baseDir = filepath.Join(workDir, baseDir)
	}
	return filepath.Join(filepath.Clean(baseDir), projectSlug(projectRoot(workDir))), nil
}

// projectRoot prefers the enclosing git checkout so sessions started from
// subdirectories share one log directory.
func projectRoot(workDir string) string {
	if _, err := exec.LookPath("git"); err != nil {
		return workDir
	}
	out, err := exec.Command("git", "-C", workDir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return workDir
	}
	if root := strings.TrimSpace(string(out)); root != "" {
		return root
	}
	return workDir
}

func projectSlug(root string) string {
	sum := sha1.Sum([]byte(root))
	return fmt.Sprintf("%s-%s", slugify(filepath.Base(root)), hex.EncodeToString(sum[:])[:8])
}

func slugify(input string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, c := range input {
		valid := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') || c == '.' || c == '_' || c == '-'
		if valid {
			b.WriteRune(c)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		return "project"
	}
	return slug
}

func sessionID() string {
	return fmt.Sprintf("%s-%d", time.Now().UTC().Format("20060102-150405"), os.Getpid())
}
