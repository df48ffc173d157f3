package logic_test

import (
	"ai_digest/dto"
	"ai_digest/logic"
	"ai_digest/shared"
	"ai_digest/test/mocks"
	"ai_digest/texts"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"os"
	"path/filepath"
	"testing"
)

type digestHarness struct {
	cfg     *shared.Config
	agg     *mocks.MockIAggregator
	metrics *mocks.MockIMetrics
	digest  logic.IDigest
}

func setupDigest(ctrl *gomock.Controller, outFile string) *digestHarness {
	h := &digestHarness{
		cfg:     shared.NewDefaultConfig(),
		agg:     mocks.NewMockIAggregator(ctrl),
		metrics: newStubMetrics(ctrl),
	}
	h.cfg.OutputFile = outFile
	renderer := logic.NewPageRenderer(texts.NewTexts())
	h.digest = logic.NewDigest(h.cfg, newDiscardLogger(), h.agg, renderer, h.metrics)
	return h
}

func TestGenerateWritesPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	outFile := filepath.Join(t.TempDir(), "nested", "deeper", "index.html")
	h := setupDigest(ctrl, outFile)

	items := []*dto.Item{
		makeItem("A", "one", ""),
		makeItem("A", "two", "https://img/two.png"),
		makeItem("B", "three", ""),
	}
	h.agg.EXPECT().Aggregate(gomock.Eq(h.cfg.Sources)).Return(items)

	d, err := h.digest.Generate()
	require.NoError(t, err)
	assert.Equal(t, len(shared.DefaultSources), d.SourceCount)
	assert.Equal(t, []*dto.Item{items[1]}, d.Featured)
	assert.Equal(t, []*dto.Item{items[0], items[2]}, d.More)

	page, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(page), "3 stories from 6 sources")
	assert.Contains(t, string(page), "https://img/two.png")

	entries, err := os.ReadDir(filepath.Dir(outFile))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestGenerateOverwritesPreviousPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	outFile := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(outFile, []byte("stale"), 0644))
	h := setupDigest(ctrl, outFile)

	h.agg.EXPECT().Aggregate(gomock.Any()).Return(nil)
	_, err := h.digest.Generate()
	require.NoError(t, err)

	page, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "stale")
	assert.Contains(t, string(page), "Nothing here today.")
}

func TestGenerateWritesMetricsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dir := t.TempDir()
	h := setupDigest(ctrl, filepath.Join(dir, "index.html"))
	h.cfg.MetricsFile = filepath.Join(dir, "digest.prom")

	h.agg.EXPECT().Aggregate(gomock.Any()).Return(nil)
	h.metrics.EXPECT().WriteToFile(gomock.Eq(h.cfg.MetricsFile)).Return(nil).Times(1)
	_, err := h.digest.Generate()
	assert.NoError(t, err)
}

func TestGenerateIgnoresMetricsFileError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dir := t.TempDir()
	h := setupDigest(ctrl, filepath.Join(dir, "index.html"))
	h.cfg.MetricsFile = filepath.Join(dir, "digest.prom")

	h.agg.EXPECT().Aggregate(gomock.Any()).Return(nil)
	h.metrics.EXPECT().WriteToFile(gomock.Any()).Return(errors.New("disk full"))
	d, err := h.digest.Generate()
	assert.NoError(t, err)
	assert.NotNil(t, d)
}

func TestGenerateFailsOnUnwritableOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not a dir"), 0644))
	h := setupDigest(ctrl, filepath.Join(blocker, "index.html"))

	h.agg.EXPECT().Aggregate(gomock.Any()).Return(nil)
	d, err := h.digest.Generate()
	assert.Error(t, err)
	assert.Nil(t, d)
}
