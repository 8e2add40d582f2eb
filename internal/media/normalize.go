package media

import (
	"strings"

	"github.com/vmunix/couchtv/pkg/provider"
)

// urlTypeHints are JSON fragments some providers embed in item urls.
// Matching is case-insensitive and needles include the closing quote so
// "tv" does not match "tvseries".
var urlTypeHints = []struct {
	needle string
	typ    provider.TvType
}{
	{`"type":"tv"`, provider.TypeTvSeries},
	{`"type":"tvseries"`, provider.TypeTvSeries},
	{`"type":"series"`, provider.TypeTvSeries},
	{`"type":"anime"`, provider.TypeAnime},
	{`"type":"ova"`, provider.TypeOVA},
}

// TypeFromURL returns the type hinted by a url, if any.
func TypeFromURL(url string) (provider.TvType, bool) {
	lower := strings.ToLower(url)
	for _, h := range urlTypeHints {
		if strings.Contains(lower, h.needle) {
			return h.typ, true
		}
	}
	return provider.TypeUnknown, false
}

// Normalize maps a provider search record onto an Item. It never fails:
// missing optional data resolves to defaults.
func Normalize(r provider.SearchResponse) Item {
	item := Item{
		ID:        ID(r.APIName, r.URL),
		URL:       r.URL,
		Provider:  r.APIName,
		Name:      r.Name,
		PosterURI: r.PosterURL,
		Type:      copyType(r.Type),
	}

	switch r.Kind {
	case provider.SearchSeries:
		item.Kind = KindSeries
		item.EpisodeCount = copyInt(r.EpisodeCount)
	case provider.SearchAnime:
		item.Kind = KindSeries
		item.EpisodeCount = maxDubEpisodes(r.DubEpisodes)
	case provider.SearchLive, provider.SearchTorrent:
		item.Kind = KindOther
	case provider.SearchResume:
		item.Kind = resumeKind(r)
		item.Resume = resumeState(r)
		if item.Kind == KindSeries {
			item.EpisodeCount = copyInt(r.EpisodeCount)
		}
		if r.BackdropURL != "" {
			item.PosterURI = r.BackdropURL
		}
	default:
		// movie and unrecognized shapes
		item.Kind = inferKind(r)
		if item.Kind == KindSeries {
			item.EpisodeCount = copyInt(r.EpisodeCount)
		}
	}

	if item.Kind != KindOther {
		item.Year = copyInt(r.Year)
	}
	return item
}

// NormalizeAll normalizes a batch of records, stamping providerName on
// records that do not carry their own api name.
func NormalizeAll(providerName string, rs []provider.SearchResponse) []Item {
	items := make([]Item, 0, len(rs))
	for _, r := range rs {
		if r.APIName == "" {
			r.APIName = providerName
		}
		items = append(items, Normalize(r))
	}
	return items
}

func inferKind(r provider.SearchResponse) Kind {
	if isEpisodic(r) {
		return KindSeries
	}
	return KindMovie
}

func isEpisodic(r provider.SearchResponse) bool {
	if r.Type != nil && r.Type.EpisodeBased() {
		return true
	}
	_, hinted := TypeFromURL(r.URL)
	return hinted
}

func resumeKind(r provider.SearchResponse) Kind {
	if r.Season != nil || r.Episode != nil {
		return KindSeries
	}
	if isEpisodic(r) {
		return KindSeries
	}
	if r.Type != nil {
		switch *r.Type {
		case provider.TypeLive, provider.TypeTorrent, provider.TypeOthers, provider.TypeCustomMedia:
			return KindOther
		}
	}
	return KindMovie
}

func resumeState(r provider.SearchResponse) *Resume {
	res := &Resume{
		Season:      copyInt(r.Season),
		Episode:     copyInt(r.Episode),
		HasBackdrop: r.BackdropURL != "",
	}
	if r.Duration > 0 {
		p := float64(r.Position) / float64(r.Duration)
		p = min(max(p, 0), 1)
		res.Progress = &p
	}
	res.Remaining = max(r.Duration-r.Position, 0)
	return res
}

// maxDubEpisodes returns the largest bucket: dub and sub tracks list the
// same episodes, so summing would double count.
func maxDubEpisodes(buckets map[provider.DubStatus]int) *int {
	if len(buckets) == 0 {
		return nil
	}
	best := 0
	for _, n := range buckets {
		best = max(best, n)
	}
	return &best
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyType(t *provider.TvType) *provider.TvType {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
