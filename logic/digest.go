package logic

import (
	"ai_digest/dto"
	"ai_digest/shared"
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_digest.go -package mocks ai_digest/logic IDigest

type IDigest interface {
	// Generate runs the whole pipeline once and publishes the page to the configured output file.
	Generate() (*dto.Digest, error)
}

type digest struct {
	cfg        *shared.Config
	logger     shared.ILogger
	aggregator IAggregator
	renderer   IPageRenderer
	metrics    IMetrics
}

func NewDigest(
	cfg *shared.Config,
	logger shared.ILogger,
	aggregator IAggregator,
	renderer IPageRenderer,
	metrics IMetrics,
) IDigest {
	return &digest{
		cfg:        cfg,
		logger:     logger,
		aggregator: aggregator,
		renderer:   renderer,
		metrics:    metrics,
	}
}

func (dg *digest) Generate() (*dto.Digest, error) {

	dg.logger.Infof("Generating digest from %d sources", len(dg.cfg.Sources))

	items := dg.aggregator.Aggregate(dg.cfg.Sources)
	featured, more := Partition(items)
	res := &dto.Digest{
		GeneratedAt: time.Now(),
		SourceCount: len(dg.cfg.Sources),
		Featured:    featured,
		More:        more,
	}

	if err := dg.writePage(res); err != nil {
		return nil, err
	}
	dg.logger.Infof("Wrote %s: %d featured, %d more", dg.cfg.OutputFile, len(featured), len(more))

	dg.metrics.ItemsRendered("featured", len(featured))
	dg.metrics.ItemsRendered("more", len(more))
	dg.metrics.DigestGenerated()
	if dg.cfg.MetricsFile != "" {
		if err := dg.metrics.WriteToFile(dg.cfg.MetricsFile); err != nil {
			// Page is out; a missing metrics file is not worth failing the run
			dg.logger.Errorf("Failed to write metrics to %s: %v", dg.cfg.MetricsFile, err)
		}
	}
	return res, nil
}

// writePage renders into a temp file next to the output and renames it into place,
// so readers never see a half-written page.
func (dg *digest) writePage(d *dto.Digest) (err error) {

	outFile := dg.cfg.OutputFile
	dir := filepath.Dir(outFile)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	var f *os.File
	if f, err = os.CreateTemp(dir, ".digest-*.html"); err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = dg.renderer.Render(bw, d); err == nil {
		err = bw.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	if err = os.Rename(tmpName, outFile); err != nil {
		return fmt.Errorf("failed to publish %s: %w", outFile, err)
	}
	return nil
}
