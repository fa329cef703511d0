package model

import (
	"sort"

	"github.com/kavya/mytube/internal/ident"
	"github.com/kavya/mytube/internal/result"
)

// Channel owns an ordered collection of videos and tracks its subscribers
// by username. Channels are keyed by name in the global registry and are
// never deleted; if deletion is ever added it must also purge the global
// video index and any playlist/history entries pointing at the channel's
// uploads, since those hold non-owning ids.
type Channel struct {
	name        string
	owner       string // username of the creator
	description string
	uploads     []*Video
	subscribers map[string]struct{}
	gen         *ident.Generator
}

// NewChannel creates an empty channel. The generator is threaded through to
// every uploaded video so comment ids come from the same process-wide
// sequence as video ids.
func NewChannel(name, owner, description string, gen *ident.Generator) *Channel {
	return &Channel{
		name:        name,
		owner:       owner,
		description: description,
		subscribers: make(map[string]struct{}),
		gen:         gen,
	}
}

func (c *Channel) Name() string        { return c.name }
func (c *Channel) Owner() string       { return c.owner }
func (c *Channel) Description() string { return c.description }

// Upload creates a new video owned by this channel and returns it. Upload
// cannot fail. The caller is responsible for registering the returned video
// in the global id index — the channel knows nothing about global lookups.
func (c *Channel) Upload(title string, duration int) *Video {
	v := newVideo(c.gen, title, c.name, duration)
	c.uploads = append(c.uploads, v)
	return v
}

// Subscribe adds a username to the subscriber set. Subscribing twice is
// harmless in effect but distinguishable in result: the second call returns
// AlreadyExists and leaves the set unchanged.
func (c *Channel) Subscribe(user string) result.Result {
	if _, ok := c.subscribers[user]; ok {
		return result.AlreadyExists(user + " already subscribed")
	}
	c.subscribers[user] = struct{}{}
	return result.Success(user + " subscribed to " + c.name)
}

// Unsubscribe removes a username from the subscriber set.
func (c *Channel) Unsubscribe(user string) result.Result {
	if _, ok := c.subscribers[user]; !ok {
		return result.NotFound(user + " was not subscribed")
	}
	delete(c.subscribers, user)
	return result.Success(user + " unsubscribed from " + c.name)
}

// SubscriberCount returns how many users are subscribed.
func (c *Channel) SubscriberCount() int {
	return len(c.subscribers)
}

// Subscribers returns the subscriber usernames, sorted for stable output.
func (c *Channel) Subscribers() []string {
	out := make([]string, 0, len(c.subscribers))
	for u := range c.subscribers {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Uploads returns the channel's videos in upload order.
func (c *Channel) Uploads() []*Video {
	out := make([]*Video, len(c.uploads))
	copy(out, c.uploads)
	return out
}
