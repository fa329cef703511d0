package model

import (
	"testing"

	"github.com/kavya/mytube/internal/ident"
	"github.com/kavya/mytube/internal/result"
)

func TestWatchRecordsHistoryAndDelegatesPlay(t *testing.T) {
	u := NewUser("alice")
	v := testVideo(t, "V1")

	res := u.Watch(v)
	if !res.OK() {
		t.Fatalf("Watch() = %v, want success", res.Status)
	}
	if v.Views() != 1 {
		t.Errorf("Views() = %d, want 1", v.Views())
	}

	// Watching again while playing: the play is rejected verbatim, but the
	// watch still lands in history.
	res = u.Watch(v)
	if res.Status != result.StatusAlreadyExists {
		t.Errorf("second Watch() = %v, want already_exists", res.Status)
	}
	if v.Views() != 1 {
		t.Errorf("Views() = %d after rejected play, want 1", v.Views())
	}

	history := u.History()
	if len(history) != 2 || history[0] != v.ID() || history[1] != v.ID() {
		t.Errorf("History() = %v, want [%d %d]", history, v.ID(), v.ID())
	}
}

func TestWatchNilVideo(t *testing.T) {
	u := NewUser("alice")

	if res := u.Watch(nil); res.Status != result.StatusNotFound {
		t.Errorf("Watch(nil) = %v, want not_found", res.Status)
	}
	if len(u.History()) != 0 {
		t.Error("Watch(nil) must not touch history")
	}
}

func TestUserCommentDelegation(t *testing.T) {
	u := NewUser("alice")
	v := testVideo(t, "V1")

	res := u.AddComment(v, "hi")
	if !res.OK() {
		t.Fatalf("AddComment() = %v, want success", res.Status)
	}
	if got := v.Comments()[0].Author(); got != "alice" {
		t.Errorf("comment author = %q, want the username", got)
	}

	if res := u.LikeComment(v, res.ID); !res.OK() {
		t.Errorf("LikeComment() = %v, want success", res.Status)
	}

	if res := u.AddComment(nil, "hi"); res.Status != result.StatusNotFound {
		t.Errorf("AddComment(nil) = %v, want not_found", res.Status)
	}
	if res := u.LikeComment(nil, 1); res.Status != result.StatusNotFound {
		t.Errorf("LikeComment(nil) = %v, want not_found", res.Status)
	}
}

func TestCreatePlaylistUniquePerUser(t *testing.T) {
	u := NewUser("alice")

	if res := u.CreatePlaylist("mix"); !res.OK() {
		t.Fatalf("CreatePlaylist() = %v, want success", res.Status)
	}
	if res := u.CreatePlaylist("mix"); res.Status != result.StatusAlreadyExists {
		t.Errorf("duplicate CreatePlaylist() = %v, want already_exists", res.Status)
	}

	// Uniqueness is per user: another user may reuse the name.
	other := NewUser("bob")
	if res := other.CreatePlaylist("mix"); !res.OK() {
		t.Errorf("other user's CreatePlaylist() = %v, want success", res.Status)
	}
}

func TestPlaylistLookup(t *testing.T) {
	u := NewUser("alice")
	u.CreatePlaylist("mix")

	if p, ok := u.Playlist("mix"); !ok || p.Name() != "mix" {
		t.Errorf("Playlist(mix) = %v, %v", p, ok)
	}
	if _, ok := u.Playlist("nope"); ok {
		t.Error("Playlist(nope) should not resolve")
	}
}

// TestSubscribeChannelKeepsBothSidesInStep covers the two-sided update:
// subscribing inserts into the channel's subscriber set and the user's
// subscription set together, and a duplicate changes neither.
func TestSubscribeChannelKeepsBothSidesInStep(t *testing.T) {
	u := NewUser("alice")
	ch := NewChannel("c", "o", "", &ident.Generator{})

	res := u.SubscribeChannel(ch)
	if !res.OK() {
		t.Fatalf("SubscribeChannel() = %v, want success", res.Status)
	}
	if !u.Subscribed("c") {
		t.Error("user side missing the subscription")
	}
	if ch.SubscriberCount() != 1 {
		t.Error("channel side missing the subscriber")
	}

	res = u.SubscribeChannel(ch)
	if res.Status != result.StatusAlreadyExists {
		t.Errorf("duplicate SubscribeChannel() = %v, want already_exists", res.Status)
	}
	if ch.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount() = %d after duplicate, want 1", ch.SubscriberCount())
	}
}

// If the channel already knows the user (out-of-band mutation), the user's
// set must not be updated on the failed subscribe — that is the atomicity
// the two-step update has to preserve.
func TestSubscribeChannelNoDriftOnChannelReject(t *testing.T) {
	u := NewUser("alice")
	ch := NewChannel("c", "o", "", &ident.Generator{})
	ch.Subscribe("alice")

	res := u.SubscribeChannel(ch)
	if res.Status != result.StatusAlreadyExists {
		t.Fatalf("SubscribeChannel() = %v, want already_exists", res.Status)
	}
	if u.Subscribed("c") {
		t.Error("user side updated even though the channel rejected")
	}
}
