package logic

import (
	"ai_digest/dto"
	"ai_digest/shared"
	"ai_digest/texts"
	"fmt"
	"github.com/mmcdole/gofeed"
	"github.com/spaolacci/murmur3"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_aggregator.go -package mocks ai_digest/logic IAggregator

// MaxPerSource caps how many entries of each feed make it onto the page.
const MaxPerSource = 8

type IAggregator interface {
	Aggregate(sources []shared.Source) []*dto.Item
}

type aggregator struct {
	logger   shared.ILogger
	reader   IFeedReader
	resolver IImageResolver
	metrics  IMetrics
}

func NewAggregator(
	logger shared.ILogger,
	reader IFeedReader,
	resolver IImageResolver,
	metrics IMetrics,
) IAggregator {
	return &aggregator{
		logger:   logger,
		reader:   reader,
		resolver: resolver,
		metrics:  metrics,
	}
}

// Aggregate reads the sources one after the other. Items stay grouped by source, in source order,
// and in feed order within a source. A source that fails contributes nothing.
func (agg *aggregator) Aggregate(sources []shared.Source) []*dto.Item {
	var items []*dto.Item
	for _, src := range sources {
		items = append(items, agg.aggregateSource(src)...)
	}
	return items
}

func (agg *aggregator) aggregateSource(src shared.Source) []*dto.Item {

	entries, err := agg.reader.Read(src.Url)
	if err != nil {
		agg.logger.Warnf("Skipping source %s: %s: %v", src.Name, src.Url, err)
		agg.metrics.FeedFetched("failed")
		return nil
	}
	agg.metrics.FeedFetched("ok")

	if len(entries) > MaxPerSource {
		entries = entries[:MaxPerSource]
	}
	res := make([]*dto.Item, 0, len(entries))
	for _, entry := range entries {
		res = append(res, agg.makeItem(src, entry))
	}
	agg.logger.Infof("Got %d items from %s", len(res), src.Name)
	return res
}

func (agg *aggregator) makeItem(src shared.Source, entry *gofeed.Item) *dto.Item {

	summary := entry.Description
	if summary == "" {
		summary = entry.Content
	}
	// Titles are plain text; markup-looking runs like "<video>" are content and stay.
	rawTitle := texts.NormalizeWhitespace(entry.Title)
	rawSummary := texts.NormalizeWhitespace(texts.StripHtml(summary))
	link := strings.TrimSpace(entry.Link)

	return &dto.Item{
		Id:         getItemId(src.Name, link, rawTitle),
		Source:     src.Name,
		Title:      texts.EscapeForBody(rawTitle),
		Summary:    texts.EscapeForBody(rawSummary),
		RawTitle:   rawTitle,
		RawSummary: rawSummary,
		Link:       link,
		Image:      agg.resolver.Resolve(entry),
	}
}

func getItemId(source, link, title string) string {
	str := source + "\t" + link
	if link == "" {
		str += "\t" + title
	}
	hasher := murmur3.New32()
	_, _ = hasher.Write([]byte(str))
	return fmt.Sprintf("%08x", hasher.Sum32())
}
