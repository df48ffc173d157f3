package logic_test

import (
	"ai_digest/dto"
	"ai_digest/logic"
	"ai_digest/shared"
	"ai_digest/test/mocks"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
	"time"
)

func setupScheduler(ctrl *gomock.Controller) (*mocks.MockIDigest, logic.IScheduler) {
	mockDigest := mocks.NewMockIDigest(ctrl)
	cfg := shared.NewDefaultConfig()
	return mockDigest, logic.NewScheduler(cfg, newDiscardLogger(), mockDigest)
}

func sampleDigest(featured, more int) *dto.Digest {
	d := &dto.Digest{GeneratedAt: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC), SourceCount: 6}
	for i := 0; i < featured; i++ {
		d.Featured = append(d.Featured, makeItem("F", "f", "https://img/f.png"))
	}
	for i := 0; i < more; i++ {
		d.More = append(d.More, makeItem("M", "m", ""))
	}
	return d
}

func TestSchedulerRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockDigest, sched := setupScheduler(ctrl)

	assert.Nil(t, sched.Latest())
	assert.Equal(t, dto.DigestStatus{}, sched.Status())

	d := sampleDigest(2, 3)
	mockDigest.EXPECT().Generate().Return(d, nil)
	require.NoError(t, sched.Refresh())

	assert.Same(t, d, sched.Latest())
	status := sched.Status()
	assert.Equal(t, d.GeneratedAt, status.GeneratedAt)
	assert.Equal(t, 2, status.FeaturedCount)
	assert.Equal(t, 3, status.MoreCount)
	assert.Equal(t, 6, status.SourceCount)
	assert.Empty(t, status.LastError)
}

func TestSchedulerErrorKeepsLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockDigest, sched := setupScheduler(ctrl)

	d := sampleDigest(1, 1)
	gomock.InOrder(
		mockDigest.EXPECT().Generate().Return(d, nil),
		mockDigest.EXPECT().Generate().Return(nil, errors.New("disk full")),
		mockDigest.EXPECT().Generate().Return(d, nil),
	)
	require.NoError(t, sched.Refresh())
	assert.EqualError(t, sched.Refresh(), "disk full")
	assert.Same(t, d, sched.Latest())
	assert.Equal(t, "disk full", sched.Status().LastError)

	require.NoError(t, sched.Refresh())
	assert.Empty(t, sched.Status().LastError)
}

func TestSchedulerStartGeneratesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockDigest, sched := setupScheduler(ctrl)

	d := sampleDigest(0, 1)
	mockDigest.EXPECT().Generate().Return(d, nil).MinTimes(1)
	sched.Start()
	require.Eventually(t, func() bool { return sched.Latest() != nil }, 2*time.Second, 10*time.Millisecond)
	sched.Stop()
	assert.Same(t, d, sched.Latest())
}

func TestSchedulerSurvivesPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockDigest, sched := setupScheduler(ctrl)

	mockDigest.EXPECT().Generate().DoAndReturn(func() (*dto.Digest, error) {
		panic("boom")
	}).Times(1)
	sched.Start()
	require.Eventually(t, func() bool { return sched.Status().LastError != "" }, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, sched.Status().LastError, "boom")

	stopped := make(chan struct{})
	go func() {
		sched.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked while the loop was sleeping after a panic")
	}
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, sched := setupScheduler(ctrl)
	sched.Stop()
}
