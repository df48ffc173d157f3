package logic

import (
	"ai_digest/shared"
	"fmt"
	"github.com/mmcdole/gofeed"
	"net/http"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_feed_reader.go -package mocks ai_digest/logic IFeedReader

type IFeedReader interface {
	Read(feedUrl string) ([]*gofeed.Item, error)
}

type feedReader struct {
	userAgent shared.IUserAgent
	metrics   IMetrics
	client    *http.Client
}

func NewFeedReader(userAgent shared.IUserAgent, metrics IMetrics) IFeedReader {
	return &feedReader{
		userAgent: userAgent,
		metrics:   metrics,
		client:    newHttpClient(),
	}
}

// Read fetches and parses an RSS, Atom or JSON feed. Items come back in document order.
func (fr *feedReader) Read(feedUrl string) ([]*gofeed.Item, error) {

	obs := fr.metrics.StartFetch("feed")
	defer obs.Finish()

	resp, err := getOK(fr.client, fr.userAgent, feedUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	fp := gofeed.NewParser()
	var feed *gofeed.Feed
	if feed, err = fp.Parse(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedUrl, err)
	}
	return feed.Items, nil
}
