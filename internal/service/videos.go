package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kavya/mytube/internal/model"
	"github.com/kavya/mytube/internal/result"
	"github.com/kavya/mytube/internal/timing"
)

// Upload creates a new video on the named channel, registers it in the
// global id index, and feeds the title to the search index. Whether the
// caller may upload to this channel (ownership) is checked by the shell,
// which holds the session.
func (t *Tube) Upload(ctx context.Context, channelName, title string, duration int) result.Result {
	defer timing.Track(t.logger, t.perf, "upload")()

	ch, ok := t.channels.Get(channelName)
	if !ok {
		return result.NotFound("Channel not found")
	}

	v := ch.Upload(title, duration)
	t.videos.Put(v)

	// A failed index write only degrades search for this one video; the
	// upload itself has already succeeded and is not rolled back.
	if err := t.index.Add(ctx, v.ID(), v.Title(), ch.Name()); err != nil {
		t.logger.Error("failed to index video",
			slog.Int64("video", v.ID()),
			slog.String("error", err.Error()),
		)
	}

	t.logger.Info("video uploaded",
		slog.Int64("video", v.ID()),
		slog.String("title", v.Title()),
		slog.String("channel", ch.Name()),
	)
	return result.SuccessID(
		fmt.Sprintf("Uploaded %q (id=%d) to channel %s", v.Title(), v.ID(), ch.Name()),
		v.ID(),
	)
}

// Watch plays the video with the given id. With a logged-in user the watch
// lands in their history; without one the video just plays.
func (t *Tube) Watch(user *model.User, videoID int64) result.Result {
	defer timing.Track(t.logger, t.perf, "watch")()

	v, ok := t.videos.Get(videoID)
	if !ok {
		return result.NotFound("Video not found")
	}
	if user == nil {
		return v.Play()
	}
	return user.Watch(v)
}

// AddComment comments on a video as the given user.
func (t *Tube) AddComment(user *model.User, videoID int64, text string) result.Result {
	defer timing.Track(t.logger, t.perf, "add_comment")()

	v, ok := t.videos.Get(videoID)
	if !ok {
		return result.NotFound("Video not found")
	}
	return user.AddComment(v, text)
}

// LikeComment likes a comment on a video as the given user.
func (t *Tube) LikeComment(user *model.User, videoID, commentID int64) result.Result {
	defer timing.Track(t.logger, t.perf, "like_comment")()

	v, ok := t.videos.Get(videoID)
	if !ok {
		return result.NotFound("Video not found")
	}
	return user.LikeComment(v, commentID)
}

// RemoveComment deletes a comment, enforcing the author-or-channel-owner
// rule. The owning channel is resolved here so the entity only has to
// compare names.
func (t *Tube) RemoveComment(videoID, commentID int64, requester string) result.Result {
	v, ok := t.videos.Get(videoID)
	if !ok {
		return result.NotFound("Video not found")
	}

	// Every video is uploaded through a registered channel, so this lookup
	// cannot miss; an empty owner just means nobody gets owner privileges.
	owner := ""
	if ch, ok := t.channels.Get(v.Uploader()); ok {
		owner = ch.Owner()
	}
	return v.RemoveComment(commentID, requester, owner)
}

// Comments lists a video's comments in insertion order.
func (t *Tube) Comments(videoID int64) ([]*model.Comment, result.Result) {
	v, ok := t.videos.Get(videoID)
	if !ok {
		return nil, result.NotFound("Video not found")
	}
	return v.Comments(), result.Success(fmt.Sprintf("Comments for %q", v.Title()))
}

// ListAllVideos returns the whole catalog in id (upload) order.
func (t *Tube) ListAllVideos() []VideoSummary {
	defer timing.Track(t.logger, t.perf, "list_all_videos")()

	all := t.videos.All()
	out := make([]VideoSummary, 0, len(all))
	for _, v := range all {
		out = append(out, summarize(v))
	}
	return out
}

// ListChannelUploads returns a channel's uploads in upload order, or false
// when no such channel exists.
func (t *Tube) ListChannelUploads(channelName string) ([]VideoSummary, bool) {
	ch, ok := t.channels.Get(channelName)
	if !ok {
		return nil, false
	}
	uploads := ch.Uploads()
	out := make([]VideoSummary, 0, len(uploads))
	for _, v := range uploads {
		out = append(out, summarize(v))
	}
	return out, true
}
