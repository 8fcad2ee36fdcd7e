// Package lingua adapts github.com/pemistahl/lingua-go as the alternate backend:
// it ranks several candidates and lets a hint bias the ranking
package lingua

import (
	"context"
	"math"
	"sort"
	"strings"

	lg "github.com/pemistahl/lingua-go"

	"langid/internal/core/classify"
	"langid/internal/core/langhint"
	perr "langid/internal/platform/errors"
)

// Name identifies the backend in results, logs and metrics
const Name = "lingua"

const (
	// DefaultHintWeight multiplies the hinted language's confidence before renormalising
	DefaultHintWeight = 2.0
	// TopN is the number of candidates reported
	TopN = 3

	reliableMin = 0.5
	reliableGap = 0.1
)

// Options tunes the adapter
type Options struct {
	// Languages restricts the detector to these ISO 639-1 codes; empty means all languages
	Languages []string
	// LowAccuracy trades accuracy on short text for speed and memory
	LowAccuracy bool
	// HintWeight is the prior applied to a hinted language; values <= 1 disable hinting
	HintWeight float64
	// Preload loads every language model at construction instead of on first use
	Preload bool
}

// Adapter is the alternate backend
type Adapter struct {
	det    lg.LanguageDetector
	byCode map[string]lg.Language
	weight float64
}

var _ classify.Adapter = (*Adapter)(nil)

// New builds the detector once; it is safe for concurrent use afterwards
func New(opt Options) (*Adapter, error) {
	byCode := make(map[string]lg.Language, len(lg.AllLanguages()))
	for _, l := range lg.AllLanguages() {
		byCode[strings.ToLower(l.IsoCode639_1().String())] = l
	}

	b := lg.NewLanguageDetectorBuilder()
	var built lg.LanguageDetectorBuilder
	if len(opt.Languages) == 0 {
		built = b.FromAllLanguages()
	} else {
		langs := make([]lg.Language, 0, len(opt.Languages))
		seen := make(map[lg.Language]bool, len(opt.Languages))
		for _, code := range opt.Languages {
			base, ok := langhint.Canonical(code)
			l, known := byCode[base]
			if !ok || !known {
				return nil, perr.WithField(perr.InvalidArgf("unsupported language %q", code), "languages")
			}
			if !seen[l] {
				seen[l] = true
				langs = append(langs, l)
			}
		}
		if len(langs) < 2 {
			return nil, perr.WithField(perr.InvalidArgf("alternate backend needs at least two languages, got %d", len(langs)), "languages")
		}
		built = b.FromLanguages(langs...)
	}
	if opt.LowAccuracy {
		built = built.WithLowAccuracyMode()
	}
	if opt.Preload {
		built = built.WithPreloadedLanguageModels()
	}

	weight := opt.HintWeight
	if weight == 0 {
		weight = DefaultHintWeight
	}
	return &Adapter{det: built.Build(), byCode: byCode, weight: weight}, nil
}

// Name implements classify.Adapter
func (a *Adapter) Name() string { return Name }

type scored struct {
	lang lg.Language
	p    float64
}

// Classify implements classify.Adapter
// hint is an ISO 639 code; hints naming a language outside the detector's set are ignored
func (a *Adapter) Classify(ctx context.Context, text, hint string) (classify.Result, error) {
	if err := ctx.Err(); err != nil {
		return classify.Result{}, err
	}
	prof := langhint.Detect(text)
	if prof.Letters == 0 {
		return classify.Unknown(Name), nil
	}

	values := a.det.ComputeLanguageConfidenceValues(text)
	ranked := make([]scored, 0, len(values))
	for _, v := range values {
		ranked = append(ranked, scored{lang: v.Language(), p: v.Value()})
	}
	a.applyHint(ranked, hint)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].p > ranked[j].p })

	res := classify.Result{
		Code:       classify.Undetermined,
		TextBytes:  prof.LetterBytes,
		Script:     prof.Script,
		Backend:    Name,
		Candidates: []classify.Candidate{},
	}
	for _, s := range ranked {
		if len(res.Candidates) == TopN || s.p <= 0 {
			break
		}
		res.Candidates = append(res.Candidates, classify.Candidate{
			Name:    strings.ToUpper(s.lang.String()),
			Code:    strings.ToLower(s.lang.IsoCode639_1().String()),
			Percent: int(math.Round(100 * s.p)),
			Score:   s.p,
		})
	}
	if len(res.Candidates) == 0 {
		return res, nil
	}

	res.Code = res.Candidates[0].Code
	top, next := ranked[0].p, 0.0
	if len(ranked) > 1 {
		next = ranked[1].p
	}
	res.Reliable = top >= reliableMin && top-next >= reliableGap
	return res, nil
}

// applyHint boosts the hinted language and renormalises ranked in place
func (a *Adapter) applyHint(ranked []scored, hint string) {
	if a.weight <= 1 || hint == "" {
		return
	}
	base, ok := langhint.Canonical(hint)
	if !ok {
		return
	}
	target, ok := a.byCode[base]
	if !ok {
		return
	}

	sum, hit := 0.0, false
	for i := range ranked {
		if ranked[i].lang == target {
			ranked[i].p *= a.weight
			hit = true
		}
		sum += ranked[i].p
	}
	if !hit || sum <= 0 {
		return
	}
	for i := range ranked {
		ranked[i].p /= sum
	}
}
