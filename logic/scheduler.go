package logic

import (
	"ai_digest/dto"
	"ai_digest/shared"
	"fmt"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_scheduler.go -package mocks ai_digest/logic IScheduler

const panicSleepSec = 10

type IScheduler interface {
	Start()
	Stop()
	// Refresh regenerates the page right away, waiting for a cycle that is already running.
	Refresh() error
	Latest() *dto.Digest
	Status() dto.DigestStatus
}

type scheduler struct {
	cfg      *shared.Config
	logger   shared.ILogger
	digest   IDigest
	interval time.Duration
	muGen    sync.Mutex
	mu       sync.RWMutex
	latest   *dto.Digest
	lastErr  error
	started  bool
	stop     chan struct{}
	done     chan struct{}
}

func NewScheduler(cfg *shared.Config, logger shared.ILogger, digest IDigest) IScheduler {
	return &scheduler{
		cfg:      cfg,
		logger:   logger,
		digest:   digest,
		interval: time.Duration(cfg.RegenerateMinutes) * time.Minute,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	s.logger.Infof("Regenerating page every %v", s.interval)
	s.started = true
	go s.loop()
}

func (s *scheduler) Stop() {
	if !s.started {
		return
	}
	close(s.stop)
	<-s.done
}

func (s *scheduler) loop() {
	defer close(s.done)
	for {
		// This is why we're here
		if err := s.cycle(); err != nil {
			s.logger.Errorf("Digest cycle failed: %v", err)
		}
		select {
		case <-s.stop:
			return
		case <-time.After(s.interval):
		}
	}
}

// cycle runs one generation; a panic is logged and turned into an error so the loop survives.
func (s *scheduler) cycle() (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Digest cycle panicked: %v", r)
			err = fmt.Errorf("digest cycle panicked: %v", r)
			s.setResult(nil, err)
			select {
			case <-s.stop:
			case <-time.After(panicSleepSec * time.Second):
			}
		}
	}()
	return s.Refresh()
}

func (s *scheduler) Refresh() error {
	s.muGen.Lock()
	defer s.muGen.Unlock()
	d, err := s.digest.Generate()
	s.setResult(d, err)
	return err
}

func (s *scheduler) setResult(d *dto.Digest, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if d != nil {
		s.latest = d
	}
}

func (s *scheduler) Latest() *dto.Digest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *scheduler) Status() dto.DigestStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res dto.DigestStatus
	if s.latest != nil {
		res.GeneratedAt = s.latest.GeneratedAt
		res.FeaturedCount = len(s.latest.Featured)
		res.MoreCount = len(s.latest.More)
		res.SourceCount = s.latest.SourceCount
	}
	if s.lastErr != nil {
		res.LastError = s.lastErr.Error()
	}
	return res
}
