package model

import (
	"fmt"
	"time"

	"github.com/kavya/mytube/internal/ident"
	"github.com/kavya/mytube/internal/result"
)

// Video holds playback state, a view counter, and an ordered list of
// comments. Videos are created only through Channel.Upload, which is what
// makes the channel the exclusive owner.
type Video struct {
	id       int64
	title    string
	uploader string // name of the owning channel
	duration int    // seconds
	views    int64
	playing  bool
	comments []*Comment
	gen      *ident.Generator // mints comment ids
}

func newVideo(gen *ident.Generator, title, uploader string, duration int) *Video {
	return &Video{
		id:       gen.Next(),
		title:    title,
		uploader: uploader,
		duration: duration,
		gen:      gen,
	}
}

func (v *Video) ID() int64        { return v.id }
func (v *Video) Title() string    { return v.title }
func (v *Video) Uploader() string { return v.uploader }
func (v *Video) Duration() int    { return v.duration }
func (v *Video) Views() int64     { return v.views }
func (v *Video) Playing() bool    { return v.playing }

// Play starts playback and counts one view.
//
// The playing flag is a toggle, not a reference count: playing an
// already-playing video is rejected with AlreadyExists and does NOT add a
// view. Play is deliberately not idempotent — play();play() yields exactly
// one view increment and one no-op.
func (v *Video) Play() result.Result {
	if v.playing {
		return result.AlreadyExists(fmt.Sprintf("Already playing %q", v.title))
	}
	v.playing = true
	v.views++
	return result.Success(fmt.Sprintf("Playing %q (views: %d)", v.title, v.views))
}

// Pause stops playback. Pausing a video that is not playing is rejected
// with InvalidInput and changes nothing.
func (v *Video) Pause() result.Result {
	if !v.playing {
		return result.InvalidInput(fmt.Sprintf("Not playing %q", v.title))
	}
	v.playing = false
	return result.Success(fmt.Sprintf("Paused %q", v.title))
}

// AddComment appends a new comment and returns its freshly minted id.
// It cannot fail: any author may comment on any video.
func (v *Video) AddComment(author, text string) result.Result {
	c := &Comment{
		id:        v.gen.Next(),
		author:    author,
		text:      text,
		createdAt: time.Now(),
	}
	v.comments = append(v.comments, c)
	return result.SuccessID("Comment added by "+author, c.id)
}

// LikeComment increments the like counter of the comment with the given id.
// Linear search — comment lists are short; an index would buy nothing here.
func (v *Video) LikeComment(commentID int64) result.Result {
	for _, c := range v.comments {
		if c.id == commentID {
			c.like()
			return result.Success(fmt.Sprintf("Liked comment %d (likes=%d)", commentID, c.likes))
		}
	}
	return result.NotFound("Comment not found")
}

// RemoveComment deletes the comment with the given id, but only when the
// requester is the comment's author or the owner of the channel the video
// belongs to. Anyone else gets PermissionDenied and the comment stays.
func (v *Video) RemoveComment(commentID int64, requester, channelOwner string) result.Result {
	for i, c := range v.comments {
		if c.id != commentID {
			continue
		}
		if requester != c.author && requester != channelOwner {
			return result.PermissionDenied("Permission denied")
		}
		v.comments = append(v.comments[:i], v.comments[i+1:]...)
		return result.Success("Comment removed")
	}
	return result.NotFound("Comment not found")
}

// Comments returns the comments in insertion order. Likes never reorder the
// list. The returned slice is a copy; the comments themselves are shared.
func (v *Video) Comments() []*Comment {
	out := make([]*Comment, len(v.comments))
	copy(out, v.comments)
	return out
}
