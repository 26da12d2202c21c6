// SPDX-License-Identifier: MPL-2.0

// Package watch re-renders help pages when their description files change.
//
// A Watcher monitors a directory for paths matching doublestar glob patterns
// and invokes a callback once the filesystem has been quiet for the debounce
// period. Bursts of events, such as an editor writing a temp file and
// renaming it over the original, coalesce into a single callback carrying
// every changed path.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period before the callback fires.
const defaultDebounce = 200 * time.Millisecond

// ErrAlreadyRunning is returned by a second call to Run.
var ErrAlreadyRunning = errors.New("watch: Run called more than once")

// defaultIgnores are editor and OS artifacts that never trigger a callback.
var defaultIgnores = []string{
	"**/.git/**",
	"**/*.swp",
	"**/*.swo",
	"**/*.swx",
	"**/*~",
	"**/.#*",
	"**/4913",
	"**/.DS_Store",
}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// BaseDir is the directory to watch. Empty means the working directory.
		BaseDir string

		// Patterns are doublestar globs, relative to BaseDir, selecting the
		// paths that trigger the callback. Empty matches every path. A pattern
		// containing "**" makes the watch recursive.
		Patterns []string

		// Ignore are extra globs merged with the built-in editor ignores.
		Ignore []string

		// Debounce is the quiet period after the last event. Zero or negative
		// values use the default.
		Debounce time.Duration

		// ClearScreen writes an ANSI clear sequence to Stdout before each
		// callback.
		ClearScreen bool

		// OnChange receives the sorted, deduplicated changed paths relative
		// to BaseDir, with forward slashes.
		OnChange func(ctx context.Context, changed []string) error

		// Stdout receives the clear sequence. nil means os.Stdout.
		Stdout io.Writer

		// Logger reports skipped runs and callback errors. nil discards them.
		Logger *log.Logger
	}

	// Watcher monitors BaseDir and fires a debounced callback when matching
	// files change. Run must be called exactly once.
	Watcher struct {
		cfg       Config
		fsw       *fsnotify.Watcher
		ignores   []string
		stdout    io.Writer
		logger    *log.Logger
		debounce  time.Duration
		baseDir   string
		recursive bool
		started   atomic.Bool
	}
)

// PatternFor returns a glob matching exactly the file name, with doublestar
// metacharacters escaped.
func PatternFor(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// New validates cfg and registers the watched directories.
func New(cfg Config) (*Watcher, error) {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("watch: determine working directory: %w", err)
		}
		baseDir = wd
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve base directory: %w", err)
	}

	if err := validatePatterns(cfg.Patterns, "watch"); err != nil {
		return nil, err
	}
	if err := validatePatterns(cfg.Ignore, "ignore"); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &Watcher{
		cfg:       cfg,
		fsw:       fsw,
		ignores:   append(slices.Clone(defaultIgnores), cfg.Ignore...),
		stdout:    stdout,
		logger:    logger,
		debounce:  debounce,
		baseDir:   absBase,
		recursive: slices.ContainsFunc(cfg.Patterns, func(p string) bool { return strings.Contains(p, "**") }),
	}

	if err := w.addDirectories(); err != nil {
		if closeErr := fsw.Close(); closeErr != nil {
			logger.Warn("close watcher after init failure", "err", closeErr)
		}
		return nil, err
	}

	return w, nil
}

// Run processes events until ctx is cancelled. It returns nil on
// cancellation and an error when the watcher can no longer deliver events.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	// fire runs at most one callback at a time. A busy callback reschedules
	// the pending set instead of dropping it.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			w.logger.Debug("previous render still running, rescheduling")
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.cfg.ClearScreen {
			fmt.Fprint(w.stdout, "\033[2J\033[H")
		}

		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				w.logger.Error("re-render failed", "changed", changed, "err", err)
			}
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if closeErr := w.fsw.Close(); closeErr != nil {
			w.logger.Warn("close fsnotify watcher", "err", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: fsnotify event channel closed unexpectedly")
			}
			if !w.relevant(evt) {
				continue
			}

			rel, err := filepath.Rel(w.baseDir, evt.Name)
			if err != nil {
				rel = evt.Name
			}
			rel = filepath.ToSlash(rel)
			if w.isIgnored(rel) || !w.matchesPatterns(rel) {
				continue
			}

			if w.recursive && evt.Has(fsnotify.Create) {
				w.maybeAddDir(evt.Name)
			}

			w.logger.Debug("change detected", "path", rel, "op", evt.Op.String())

			mu.Lock()
			pending[rel] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: fsnotify error channel closed unexpectedly")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			w.logger.Warn("fsnotify error", "err", err)
		}
	}
}

// relevant drops events that cannot change file contents.
func (w *Watcher) relevant(evt fsnotify.Event) bool {
	return evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) ||
		evt.Has(fsnotify.Rename) || evt.Has(fsnotify.Remove)
}

// addDirectories registers BaseDir, and every non-ignored directory below it
// when the watch is recursive.
func (w *Watcher) addDirectories() error {
	if !w.recursive {
		if err := w.fsw.Add(w.baseDir); err != nil {
			return fmt.Errorf("watch: add directory %q: %w", w.baseDir, err)
		}
		return nil
	}

	walkErr := filepath.WalkDir(w.baseDir, func(path string, d os.DirEntry, walkDirErr error) error {
		if walkDirErr != nil {
			w.logger.Warn("skipping inaccessible path", "path", path, "err", walkDirErr)
			return nil //nolint:nilerr // unreadable subdirectories are not watched
		}
		if !d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(w.baseDir, path)
		if relErr != nil {
			return nil //nolint:nilerr // skip paths that cannot be made relative
		}
		if rel != "." && (w.isIgnored(rel) || w.isIgnored(rel+"/")) {
			return filepath.SkipDir
		}

		if addErr := w.fsw.Add(path); addErr != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, addErr)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("watch: walk directory tree: %w", walkErr)
	}
	return nil
}

// maybeAddDir extends a recursive watch to a directory created after start.
func (w *Watcher) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if addErr := w.fsw.Add(path); addErr != nil {
		w.logger.Warn("add new directory", "path", path, "err", addErr)
	}
}

func (w *Watcher) isIgnored(rel string) bool {
	return matchAny(w.ignores, rel)
}

// matchesPatterns reports whether rel matches a watch pattern. No patterns
// match everything.
func (w *Watcher) matchesPatterns(rel string) bool {
	if len(w.cfg.Patterns) == 0 {
		return true
	}
	return matchAny(w.cfg.Patterns, rel)
}

func matchAny(patterns []string, rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range patterns {
		if doublestar.MatchUnvalidated(pat, normalized) {
			return true
		}
	}
	return false
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}

// validatePatterns rejects malformed globs up front so they cannot silently
// fail to match.
func validatePatterns(patterns []string, label string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("watch: invalid %s pattern %q: %w", label, pat, doublestar.ErrBadPattern)
		}
	}
	return nil
}
