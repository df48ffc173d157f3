package logic

import (
	"ai_digest/dto"
	"ai_digest/shared"
	"ai_digest/texts"
	"github.com/samber/lo"
	"io"
	"net/url"
	"strconv"
	"strings"
)

const (
	snippetPage      = "page.html"
	snippetImageCard = "card_image.html"
	snippetTextCard  = "card_text.html"
	snippetEmpty     = "empty_section.html"
)

var webSchemes = []string{"http", "https"}

type IPageRenderer interface {
	Render(w io.Writer, digest *dto.Digest) error
}

type pageRenderer struct {
	txt texts.ITexts
}

func NewPageRenderer(txt texts.ITexts) IPageRenderer {
	return &pageRenderer{txt}
}

func (pr *pageRenderer) Render(w io.Writer, digest *dto.Digest) error {
	page := pr.txt.WithVals(snippetPage, map[string]string{
		"today":       shared.FormatDigestDate(digest.GeneratedAt),
		"itemCount":   strconv.Itoa(digest.ItemCount()),
		"sourceCount": strconv.Itoa(digest.SourceCount),
		"featured":    pr.renderCards(snippetImageCard, digest.Featured),
		"more":        pr.renderCards(snippetTextCard, digest.More),
	})
	_, err := io.WriteString(w, page)
	return err
}

func (pr *pageRenderer) renderCards(snippet string, items []*dto.Item) string {
	if len(items) == 0 {
		return pr.txt.Get(snippetEmpty)
	}
	var sb strings.Builder
	for _, itm := range items {
		sb.WriteString(pr.renderCard(snippet, itm))
	}
	return sb.String()
}

// Visible title is already escaped for element content. Attributes are escaped here, once,
// from the unescaped text, so nothing ends up double-encoded.
func (pr *pageRenderer) renderCard(snippet string, itm *dto.Item) string {
	return pr.txt.WithVals(snippet, map[string]string{
		"id":          texts.EscapeForAttribute(itm.Id),
		"source":      texts.EscapeForBody(itm.Source),
		"title":       itm.Title,
		"titleAttr":   texts.EscapeForAttribute(itm.RawTitle),
		"summaryAttr": texts.EscapeForAttribute(itm.RawSummary),
		"linkAttr":    texts.EscapeForAttribute(safeUrl(itm.Link)),
		"imageAttr":   texts.EscapeForAttribute(safeUrl(itm.Image)),
	})
}

// safeUrl lets through http(s) URLs only; feeds are untrusted and javascript: links end up in hrefs.
func safeUrl(urlStr string) string {
	parsedUrl, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	if !lo.Contains(webSchemes, strings.ToLower(parsedUrl.Scheme)) {
		return ""
	}
	return urlStr
}
