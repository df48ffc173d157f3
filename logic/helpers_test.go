package logic_test

import (
	"ai_digest/dto"
	"ai_digest/shared"
	"ai_digest/test/mocks"
	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"
	"io"
)

func newDiscardLogger() shared.ILogger {
	return log.New(io.Discard)
}

// newStubMetrics accepts every metrics call except ImageResolved and WriteToFile, which tests set up themselves.
func newStubMetrics(ctrl *gomock.Controller) *mocks.MockIMetrics {
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartFetch(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().FeedFetched(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ItemsRendered(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DigestGenerated().AnyTimes()
	return mockMetrics
}

func makeItem(source, title, image string) *dto.Item {
	return &dto.Item{
		Id:       source + "/" + title,
		Source:   source,
		Title:    title,
		RawTitle: title,
		Link:     "https://" + source + ".example/" + title,
		Image:    image,
	}
}
