// Package whatlang adapts github.com/abadojack/whatlanggo as the primary backend
package whatlang

import (
	"context"
	"math"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"

	"langid/internal/core/classify"
	"langid/internal/core/langhint"
	perr "langid/internal/platform/errors"
)

// Name identifies the backend in results, logs and metrics
const Name = "whatlang"

// DefaultReliable is the confidence at or above which a guess counts as reliable
const DefaultReliable = 0.8

// Options tunes the adapter
type Options struct {
	// Reliable is the confidence threshold for the reliability flag; 0 means DefaultReliable
	Reliable float64
	// Languages restricts detection to these ISO 639 codes; empty means every supported language
	Languages []string
}

// Adapter is the primary backend; the hint is accepted and ignored
type Adapter struct {
	reliable float64
	opts     whatlanggo.Options
}

var _ classify.Adapter = (*Adapter)(nil)

// New builds the adapter
// Unknown codes in Languages are reported as an invalid argument
func New(opt Options) (*Adapter, error) {
	if opt.Reliable <= 0 || opt.Reliable > 1 {
		opt.Reliable = DefaultReliable
	}
	a := &Adapter{reliable: opt.Reliable}
	if len(opt.Languages) == 0 {
		return a, nil
	}
	a.opts.Whitelist = make(map[whatlanggo.Lang]bool, len(opt.Languages))
	for _, code := range opt.Languages {
		l, ok := lookup(code)
		if !ok {
			return nil, perr.WithField(perr.InvalidArgf("unsupported language %q", code), "languages")
		}
		a.opts.Whitelist[l] = true
	}
	return a, nil
}

// lookup resolves an ISO 639-1 or 639-3 code to a whatlanggo language
func lookup(code string) (whatlanggo.Lang, bool) {
	b, err := language.ParseBase(strings.TrimSpace(code))
	if err != nil {
		return 0, false
	}
	l := whatlanggo.CodeToLang(b.ISO3())
	return l, l >= 0 && l.Iso6393() != ""
}

// Name implements classify.Adapter
func (a *Adapter) Name() string { return Name }

// Classify implements classify.Adapter
func (a *Adapter) Classify(ctx context.Context, text, _ string) (classify.Result, error) {
	if err := ctx.Err(); err != nil {
		return classify.Result{}, err
	}
	prof := langhint.Detect(text)
	if prof.Letters == 0 {
		return classify.Unknown(Name), nil
	}

	info := whatlanggo.DetectWithOptions(text, a.opts)
	if info.Script == nil || info.Lang < 0 || info.Lang.Iso6393() == "" {
		// single-language scripts still name a language, never reliably
		res := classify.Unknown(Name)
		if prof.Lang != "" {
			res.Code = prof.Lang
		}
		res.TextBytes = prof.LetterBytes
		res.Script = prof.Script
		return res, nil
	}

	code := shortCode(info.Lang.Iso6393())
	script := whatlanggo.Scripts[info.Script]
	if script == "" {
		script = prof.Script
	}
	conf := clamp01(info.Confidence)

	return classify.Result{
		Code:      code,
		Reliable:  conf >= a.reliable,
		TextBytes: prof.LetterBytes,
		Script:    script,
		Backend:   Name,
		Candidates: []classify.Candidate{{
			Name:    strings.ToUpper(info.Lang.String()),
			Code:    code,
			Percent: 100,
			Score:   conf,
		}},
	}, nil
}

// shortCode maps an ISO 639-3 code to ISO 639-1 when one exists
func shortCode(iso3 string) string {
	b, err := language.ParseBase(iso3)
	if err != nil {
		return iso3
	}
	return b.String()
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}
