package logic

import (
	"ai_digest/shared"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"
)

const profilerLoopSec = 60
const profileExt = ".prof.txt"

// IProfiler periodically dumps goroutine stacks to the profile dir while the server runs.
// With no profile_dir configured, Start and Stop do nothing.
type IProfiler interface {
	Start()
	Stop()
}

type profiler struct {
	logger   shared.ILogger
	dir      string
	keepDays int
	started  bool
	stop     chan struct{}
	done     chan struct{}
}

func NewProfiler(cfg *shared.Config, logger shared.ILogger) IProfiler {
	return &profiler{
		logger:   logger,
		dir:      cfg.ProfileDir,
		keepDays: cfg.ProfileKeepDays,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (prof *profiler) Start() {
	if prof.dir == "" {
		return
	}
	prof.started = true
	prof.logger.Infof("Writing goroutine profiles to %s every %ds", prof.dir, profilerLoopSec)
	go prof.loop()
}

func (prof *profiler) Stop() {
	if !prof.started {
		return
	}
	close(prof.stop)
	<-prof.done
}

func (prof *profiler) loop() {
	defer close(prof.done)
	for {
		if err := saveProfile(prof.dir, time.Now()); err != nil {
			prof.logger.Warnf("Failed to save profile: %v", err)
		} else if err = purgeOld(prof.dir, prof.keepDays, time.Now()); err != nil {
			prof.logger.Warnf("Failed to purge old profiles: %v", err)
		}
		select {
		case <-prof.stop:
			return
		case <-time.After(profilerLoopSec * time.Second):
		}
	}
}

func saveProfile(profileDir string, now time.Time) error {
	if err := os.MkdirAll(profileDir, 0755); err != nil {
		return err
	}
	fname := now.Format("2006-01-02!15-04-05") + profileExt
	f, err := os.Create(filepath.Join(profileDir, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return err
	}
	return pprof.Lookup("goroutine").WriteTo(f, 2)
}

// purgeOld only removes files this profiler wrote, so pointing profile_dir at a shared folder is safe.
func purgeOld(profileDir string, keepDays int, now time.Time) error {
	if keepDays <= 0 {
		return nil
	}
	cutoff := now.AddDate(0, 0, -keepDays)
	entries, err := os.ReadDir(profileDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), profileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if info.ModTime().Before(cutoff) {
			if err = os.Remove(filepath.Join(profileDir, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}
