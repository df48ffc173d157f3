package logic_test

import (
	"ai_digest/logic"
	"ai_digest/shared"
	"ai_digest/test/mocks"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const pageWithOgImage = `<!DOCTYPE html>
<html><head>
<title>Some article</title>
<meta property="og:title" content="Some article">
<meta property="og:image" content="https://cdn.example/hero.jpg">
</head><body><p>Text</p></body></html>`

const pageWithoutOgImage = `<!DOCTYPE html>
<html><head><title>Bare</title><meta name="description" content="Nothing to see"></head>
<body><img src="/inline.png"></body></html>`

type pageServer struct {
	*httptest.Server
	hits      atomic.Int32
	userAgent atomic.Value
}

func newPageServer(t *testing.T, handler http.HandlerFunc) *pageServer {
	ps := &pageServer{}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ps.hits.Add(1)
		ps.userAgent.Store(r.Header.Get("User-Agent"))
		handler(w, r)
	}))
	t.Cleanup(ps.Close)
	return ps
}

func servePage(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}
}

func mediaContent(attrs map[string]string) ext.Extensions {
	return ext.Extensions{
		"media": {
			"content": {{Name: "content", Attrs: attrs}},
		},
	}
}

func setupResolver(t *testing.T) (*gomock.Controller, *mocks.MockIMetrics, logic.IImageResolver) {
	ctrl := gomock.NewController(t)
	mockMetrics := newStubMetrics(ctrl)
	cfg := shared.NewDefaultConfig()
	resolver := logic.NewImageResolver(newDiscardLogger(), shared.NewUserAgent(cfg), mockMetrics)
	return ctrl, mockMetrics, resolver
}

func TestResolveUsesMediaWithoutNetwork(t *testing.T) {
	ctrl, mockMetrics, resolver := setupResolver(t)
	defer ctrl.Finish()
	ps := newPageServer(t, servePage(pageWithOgImage))

	mockMetrics.EXPECT().ImageResolved(gomock.Eq("media")).Times(1)
	itm := &gofeed.Item{
		Link:       ps.URL + "/article",
		Extensions: mediaContent(map[string]string{"url": "https://x/img.png", "medium": "image"}),
	}
	assert.Equal(t, "https://x/img.png", resolver.Resolve(itm))
	assert.Equal(t, int32(0), ps.hits.Load())
}

func TestResolveUsesMediaInsideGroup(t *testing.T) {
	ctrl, mockMetrics, resolver := setupResolver(t)
	defer ctrl.Finish()

	mockMetrics.EXPECT().ImageResolved(gomock.Eq("media")).Times(1)
	itm := &gofeed.Item{
		Extensions: ext.Extensions{
			"media": {
				"group": {{
					Name: "group",
					Children: map[string][]ext.Extension{
						"content": {
							{Name: "content", Attrs: map[string]string{"url": "https://x/first.png"}},
							{Name: "content", Attrs: map[string]string{"url": "https://x/second.png"}},
						},
					},
				}},
			},
		},
	}
	assert.Equal(t, "https://x/first.png", resolver.Resolve(itm))
}

func TestResolveMalformedMediaFallsBackToOgImage(t *testing.T) {
	ctrl, mockMetrics, resolver := setupResolver(t)
	defer ctrl.Finish()
	ps := newPageServer(t, servePage(pageWithOgImage))

	mockMetrics.EXPECT().ImageResolved(gomock.Eq("og")).Times(1)
	itm := &gofeed.Item{
		Link:       ps.URL + "/article",
		Extensions: mediaContent(map[string]string{"medium": "image"}),
	}
	assert.Equal(t, "https://cdn.example/hero.jpg", resolver.Resolve(itm))
	assert.Equal(t, int32(1), ps.hits.Load())
	assert.Equal(t, "Mozilla/5.0", ps.userAgent.Load())
}

func TestResolveMakesRelativeOgImageAbsolute(t *testing.T) {
	ctrl, mockMetrics, resolver := setupResolver(t)
	defer ctrl.Finish()
	ps := newPageServer(t, servePage(`<html><head>
		<meta property="og:image" content="">
		<meta property="og:image" content="/img/cover.png">
		</head></html>`))

	mockMetrics.EXPECT().ImageResolved(gomock.Eq("og")).Times(1)
	itm := &gofeed.Item{Link: ps.URL + "/posts/one"}
	assert.Equal(t, ps.URL+"/img/cover.png", resolver.Resolve(itm))
}

func TestResolveAbsentCases(t *testing.T) {
	notFound := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}
	scenarios := []struct {
		name    string
		handler http.HandlerFunc
		link    bool
	}{
		{"no link", servePage(pageWithOgImage), false},
		{"no og tag", servePage(pageWithoutOgImage), true},
		{"status 404", notFound, true},
		{"not html", servePage("\x00\x01 binary junk"), true},
	}
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			ctrl, mockMetrics, resolver := setupResolver(t)
			defer ctrl.Finish()
			ps := newPageServer(t, sc.handler)

			mockMetrics.EXPECT().ImageResolved(gomock.Eq("none")).Times(1)
			itm := &gofeed.Item{}
			if sc.link {
				itm.Link = ps.URL + "/article"
			}
			assert.Equal(t, "", resolver.Resolve(itm))
		})
	}
}

func TestResolveTimeoutMeansNoImage(t *testing.T) {
	restore := logic.SetFetchTimeout(50 * time.Millisecond)
	defer restore()
	ctrl, mockMetrics, resolver := setupResolver(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	ps := newPageServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	mockMetrics.EXPECT().ImageResolved(gomock.Eq("none")).Times(1)
	itm := &gofeed.Item{Link: ps.URL + "/slow"}
	start := time.Now()
	assert.Equal(t, "", resolver.Resolve(itm))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestResolveUnreachableHost(t *testing.T) {
	ctrl, mockMetrics, resolver := setupResolver(t)
	defer ctrl.Finish()

	ps := httptest.NewServer(servePage(pageWithOgImage))
	deadUrl := ps.URL
	ps.Close()

	mockMetrics.EXPECT().ImageResolved(gomock.Eq("none")).Times(1)
	assert.Equal(t, "", resolver.Resolve(&gofeed.Item{Link: deadUrl + "/article"}))
}
