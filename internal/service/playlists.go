package service

import (
	"fmt"
	"log/slog"

	"github.com/kavya/mytube/internal/model"
	"github.com/kavya/mytube/internal/result"
	"github.com/kavya/mytube/internal/timing"
)

// CreatePlaylist creates an empty playlist for the user. Names are unique
// per user only.
func (t *Tube) CreatePlaylist(user *model.User, name string) result.Result {
	if name == "" {
		return result.InvalidInput("Playlist name is required")
	}
	return user.CreatePlaylist(name)
}

// AddToPlaylist appends a video id to the user's playlist. The video must
// resolve at add time only so the success message can name it; the playlist
// itself stores the bare id and never re-checks.
func (t *Tube) AddToPlaylist(user *model.User, playlistName string, videoID int64) result.Result {
	p, ok := user.Playlist(playlistName)
	if !ok {
		return result.NotFound("Playlist not found")
	}
	v, ok := t.videos.Get(videoID)
	if !ok {
		return result.NotFound("Video not found")
	}
	p.Add(videoID)
	t.logger.Info("video added to playlist",
		slog.String("user", user.Username()),
		slog.String("playlist", playlistName),
		slog.Int64("video", videoID),
	)
	return result.Success(fmt.Sprintf("Added %q to playlist %q", v.Title(), playlistName))
}

// PlayPlaylist resolves the playlist's entries and plays each one to
// completion (play, then pause), so every resolvable entry counts a view.
// Stale ids are skipped silently — the returned entries are what actually
// played, which may be fewer than the playlist holds, or none.
func (t *Tube) PlayPlaylist(user *model.User, name string) ([]VideoSummary, result.Result) {
	defer timing.Track(t.logger, t.perf, "play_playlist")()

	p, ok := user.Playlist(name)
	if !ok {
		return nil, result.NotFound("Playlist not found")
	}

	resolved := p.Resolve(t.videos.Get)
	if pruned := len(p.VideoIDs()) - len(resolved); pruned > 0 {
		t.logger.Debug("skipped stale playlist entries",
			slog.String("playlist", name),
			slog.Int("pruned", pruned),
		)
	}

	out := make([]VideoSummary, 0, len(resolved))
	for _, v := range resolved {
		v.Play()
		v.Pause()
		out = append(out, summarize(v))
	}
	return out, result.Success(fmt.Sprintf("Playing playlist %q (%d videos)", name, len(out)))
}
