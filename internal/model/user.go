package model

import (
	"fmt"

	"github.com/kavya/mytube/internal/result"
)

// User tracks channel subscriptions, watch history, and named playlists.
// Watch history stores video ids, oldest first, and ids only — like
// playlists, history must survive a video disappearing from the global
// index.
type User struct {
	username      string
	subscriptions map[string]struct{} // channel names
	history       []int64
	playlists     map[string]*Playlist
}

func NewUser(username string) *User {
	return &User{
		username:      username,
		subscriptions: make(map[string]struct{}),
		playlists:     make(map[string]*Playlist),
	}
}

func (u *User) Username() string { return u.username }

// History returns the watched video ids, oldest first.
func (u *User) History() []int64 {
	out := make([]int64, len(u.history))
	copy(out, u.history)
	return out
}

// Watch records the video in the user's history and starts playback,
// returning Video.Play's result verbatim. The id lands in history even when
// playback is rejected as already playing — the user did watch it.
func (u *User) Watch(v *Video) result.Result {
	if v == nil {
		return result.NotFound("Video not found")
	}
	u.history = append(u.history, v.ID())
	return v.Play()
}

// AddComment comments on the video as this user.
func (u *User) AddComment(v *Video, text string) result.Result {
	if v == nil {
		return result.NotFound("Video not found")
	}
	return v.AddComment(u.username, text)
}

// LikeComment likes a comment on the video.
func (u *User) LikeComment(v *Video, commentID int64) result.Result {
	if v == nil {
		return result.NotFound("Video not found")
	}
	return v.LikeComment(commentID)
}

// CreatePlaylist creates an empty playlist. Playlist names are unique per
// user, not globally.
func (u *User) CreatePlaylist(name string) result.Result {
	if _, ok := u.playlists[name]; ok {
		return result.AlreadyExists("Playlist exists")
	}
	u.playlists[name] = NewPlaylist(name)
	return result.Success(fmt.Sprintf("Created playlist %q", name))
}

// Playlist returns the named playlist, or false when the user has none by
// that name. A lookup, not a mutation, so no Result.
func (u *User) Playlist(name string) (*Playlist, bool) {
	p, ok := u.playlists[name]
	return p, ok
}

// SubscribeChannel subscribes this user to the channel, keeping the user's
// subscription set and the channel's subscriber set in step: the local set
// is only updated after the channel accepts, so the two sides cannot drift
// even if either had been mutated out of band.
func (u *User) SubscribeChannel(ch *Channel) result.Result {
	if _, ok := u.subscriptions[ch.Name()]; ok {
		return result.AlreadyExists("Already subscribed")
	}
	res := ch.Subscribe(u.username)
	if res.OK() {
		u.subscriptions[ch.Name()] = struct{}{}
	}
	return res
}

// Subscribed reports whether the user is subscribed to the named channel.
func (u *User) Subscribed(channelName string) bool {
	_, ok := u.subscriptions[channelName]
	return ok
}
