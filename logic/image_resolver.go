package logic

import (
	"ai_digest/shared"
	"errors"
	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"io"
	"net/http"
	"net/url"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_image_resolver.go -package mocks ai_digest/logic IImageResolver

const maxPageBytes = 4 << 20

const (
	imgLabelMedia = "media"
	imgLabelOg    = "og"
	imgLabelNone  = "none"
)

var (
	errNoMedia        = errors.New("no media:content descriptor")
	errMediaMalformed = errors.New("media:content descriptor has no url")
	errNoLink         = errors.New("item has no link")
	errNoOgImage      = errors.New("page has no og:image meta tag")
)

type IImageResolver interface {
	// Resolve returns the item's image URL, or "" if it has none. It never fails.
	Resolve(itm *gofeed.Item) string
}

// imageResult is either a found URL or the reason there was none.
type imageResult struct {
	url string
	err error
}

func foundImage(imgUrl string) imageResult {
	return imageResult{url: imgUrl}
}

func noImage(err error) imageResult {
	return imageResult{err: err}
}

func (r imageResult) found() bool {
	return r.url != ""
}

type imageAttempt struct {
	label string
	try   func(itm *gofeed.Item) imageResult
}

type imageResolver struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	client    *http.Client
	attempts  []imageAttempt
}

func NewImageResolver(logger shared.ILogger, userAgent shared.IUserAgent, metrics IMetrics) IImageResolver {
	ir := imageResolver{
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		client:    newHttpClient(),
	}
	// Cheap path first; the page fetch only happens if the feed itself has no image
	ir.attempts = []imageAttempt{
		{imgLabelMedia, mediaImage},
		{imgLabelOg, ir.ogImage},
	}
	return &ir
}

func (ir *imageResolver) Resolve(itm *gofeed.Item) string {
	for _, attempt := range ir.attempts {
		res := attempt.try(itm)
		if res.found() {
			ir.metrics.ImageResolved(attempt.label)
			return res.url
		}
		ir.logger.Debugf("No %s image for '%s': %v", attempt.label, itm.Link, res.err)
	}
	ir.metrics.ImageResolved(imgLabelNone)
	return ""
}

// mediaImage takes the URL of the first media:content descriptor, looking inside media:group if needed.
func mediaImage(itm *gofeed.Item) imageResult {
	media, ok := itm.Extensions["media"]
	if !ok {
		return noImage(errNoMedia)
	}
	contents := media["content"]
	if len(contents) == 0 {
		for _, group := range media["group"] {
			if len(group.Children["content"]) != 0 {
				contents = group.Children["content"]
				break
			}
		}
	}
	if len(contents) == 0 {
		return noImage(errNoMedia)
	}
	imgUrl := strings.TrimSpace(contents[0].Attrs["url"])
	if imgUrl == "" {
		return noImage(errMediaMalformed)
	}
	return foundImage(imgUrl)
}

// ogImage fetches the item's page and reads <meta property="og:image">.
func (ir *imageResolver) ogImage(itm *gofeed.Item) imageResult {

	link := strings.TrimSpace(itm.Link)
	if link == "" {
		return noImage(errNoLink)
	}

	obs := ir.metrics.StartFetch("page")
	defer obs.Finish()

	resp, err := getOK(ir.client, ir.userAgent, link)
	if err != nil {
		return noImage(err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return noImage(err)
	}

	var content string
	doc.Find("meta[property='og:image']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content = strings.TrimSpace(s.AttrOr("content", ""))
		return content == ""
	})
	if content == "" {
		return noImage(errNoOgImage)
	}
	return foundImage(makeAbsolute(resp.Request.URL, content))
}

// makeAbsolute resolves a possibly relative image reference against the page it was found on.
func makeAbsolute(pageUrl *url.URL, ref string) string {
	refUrl, err := url.Parse(ref)
	if err != nil || refUrl.IsAbs() || pageUrl == nil {
		return ref
	}
	return pageUrl.ResolveReference(refUrl).String()
}
