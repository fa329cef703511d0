// Package model defines the entity graph of the service: users, channels,
// videos, comments, and playlists, together with the operations on them.
//
// OWNERSHIP IN THE GRAPH:
// A Video is owned by exactly one Channel, and a Comment by exactly one
// Video; a Playlist exists only inside its User. The global registries (see
// internal/registry) hold non-owning references into these collections —
// they let callers resolve a name or id, never destroy anything.
//
// Fields are unexported on purpose. State like a view counter or a like
// count must only move through the entity's operations, so the invariants
// (one view per successful play, ids never reused) can be enforced in one
// place instead of trusted to every caller.
package model

import "time"

// Comment is a single comment on a video. The author, text, and creation
// time never change after construction; only the like counter moves.
type Comment struct {
	id        int64
	author    string
	text      string
	likes     int
	createdAt time.Time
}

func (c *Comment) ID() int64            { return c.id }
func (c *Comment) Author() string       { return c.author }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) Likes() int           { return c.likes }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

// like increments the like counter. Reached only through Video.LikeComment,
// which is where the id lookup and the operation result live.
func (c *Comment) like() {
	c.likes++
}
