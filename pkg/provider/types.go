package provider

// TvType is the declared content type of a title.
type TvType int

const (
	TypeUnknown TvType = iota
	TypeMovie
	TypeAnimeMovie
	TypeTvSeries
	TypeCartoon
	TypeAnime
	TypeOVA
	TypeTorrent
	TypeDocumentary
	TypeAsianDrama
	TypeLive
	TypeNSFW
	TypeOthers
	TypeMusic
	TypeAudioBook
	TypeCustomMedia
	TypeAudio
	TypePodcast
)

var tvTypeNames = map[TvType]string{
	TypeUnknown:     "unknown",
	TypeMovie:       "movie",
	TypeAnimeMovie:  "anime_movie",
	TypeTvSeries:    "tv_series",
	TypeCartoon:     "cartoon",
	TypeAnime:       "anime",
	TypeOVA:         "ova",
	TypeTorrent:     "torrent",
	TypeDocumentary: "documentary",
	TypeAsianDrama:  "asian_drama",
	TypeLive:        "live",
	TypeNSFW:        "nsfw",
	TypeOthers:      "others",
	TypeMusic:       "music",
	TypeAudioBook:   "audio_book",
	TypeCustomMedia: "custom_media",
	TypeAudio:       "audio",
	TypePodcast:     "podcast",
}

func (t TvType) String() string {
	if s, ok := tvTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// EpisodeBased reports whether titles of this type are inherently episodic.
func (t TvType) EpisodeBased() bool {
	switch t {
	case TypeTvSeries, TypeCartoon, TypeAnime, TypeOVA, TypeAsianDrama:
		return true
	default:
		return false
	}
}

// DubStatus tags the language track of an anime episode bucket.
type DubStatus int

const (
	DubStatusNone DubStatus = iota
	DubStatusDubbed
	DubStatusSubbed
)

func (d DubStatus) String() string {
	switch d {
	case DubStatusDubbed:
		return "dubbed"
	case DubStatusSubbed:
		return "subbed"
	default:
		return "none"
	}
}

// Actor is a cast member.
type Actor struct {
	Name     string
	Role     string
	ImageURL string
}
