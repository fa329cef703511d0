package model

// Playlist is an ordered list of video ids scoped to one user.
//
// WHY IDS AND NOT *Video?
// Videos are owned by their channel. If a playlist held pointers it would
// keep a second live reference into another entity's owned collection, and
// channel deletion (should it ever be added) would leave dangling pointers.
// Ids are safe to hold forever: resolving one that no longer exists simply
// skips it.
type Playlist struct {
	name     string
	videoIDs []int64
}

// NewPlaylist creates an empty playlist. Exposed for tests; users create
// playlists through User.CreatePlaylist, which enforces name uniqueness.
func NewPlaylist(name string) *Playlist {
	return &Playlist{name: name}
}

func (p *Playlist) Name() string { return p.name }

// Add appends a video id. Duplicates are permitted, and no existence check
// is made against the global index — a playlist happily records ids the
// caller has not verified.
func (p *Playlist) Add(videoID int64) {
	p.videoIDs = append(p.videoIDs, videoID)
}

// VideoIDs returns the ids in insertion order.
func (p *Playlist) VideoIDs() []int64 {
	out := make([]int64, len(p.videoIDs))
	copy(out, p.videoIDs)
	return out
}

// Resolve maps the playlist's ids through the supplied lookup, silently
// skipping ids that no longer resolve. The result preserves playlist order
// and may be shorter than VideoIDs, or empty.
func (p *Playlist) Resolve(lookup func(int64) (*Video, bool)) []*Video {
	out := make([]*Video, 0, len(p.videoIDs))
	for _, id := range p.videoIDs {
		if v, ok := lookup(id); ok {
			out = append(out, v)
		}
	}
	return out
}
