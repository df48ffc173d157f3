package texts

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed snippets
var fs embed.FS

// ITexts serves the page and card snippets. Values passed to WithVals are inserted verbatim,
// so the caller escapes each one for the context its placeholder sits in.
type ITexts interface {
	Get(id string) string
	WithVals(id string, vals map[string]string) string
}

func NewTexts() ITexts {
	return &texts{}
}

type texts struct {
}

func (t *texts) Get(id string) string {
	fn := fmt.Sprintf("snippets/%s", id)
	bytes, err := fs.ReadFile(fn)
	if err != nil {
		return ""
	}
	return string(bytes)
}

func (t *texts) WithVals(id string, vals map[string]string) string {
	res := t.Get(id)
	pairs := make([]string, 0, 2*len(vals))
	for ph, val := range vals {
		pairs = append(pairs, fmt.Sprintf("{{%s}}", ph), val)
	}
	// Single pass, so a value that happens to contain "{{x}}" is never expanded again
	return strings.NewReplacer(pairs...).Replace(res)
}
