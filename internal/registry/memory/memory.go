// Package memory implements the registry interfaces with plain maps.
//
// All state in this system lives for the process lifetime only, so there is
// no storage backend behind these: a map per table is the whole
// implementation. The registries hand out live entity pointers — callers
// mutate the entities through their operations, never through the registry.
package memory

import (
	"sort"

	"github.com/kavya/mytube/internal/model"
	"github.com/kavya/mytube/internal/registry"
)

// Compile-time interface checks, same pattern as any repository
// implementation: fail the build, not the first call, if a method is missing.
var (
	_ registry.Users    = (*Users)(nil)
	_ registry.Channels = (*Channels)(nil)
	_ registry.Videos   = (*Videos)(nil)
)

// Users is an in-memory username→user table.
type Users struct {
	byName map[string]*model.User
}

func NewUsers() *Users {
	return &Users{byName: make(map[string]*model.User)}
}

func (r *Users) Add(u *model.User) bool {
	if _, ok := r.byName[u.Username()]; ok {
		return false
	}
	r.byName[u.Username()] = u
	return true
}

func (r *Users) Get(username string) (*model.User, bool) {
	u, ok := r.byName[username]
	return u, ok
}

// Channels is an in-memory name→channel table.
type Channels struct {
	byName map[string]*model.Channel
}

func NewChannels() *Channels {
	return &Channels{byName: make(map[string]*model.Channel)}
}

func (r *Channels) Add(c *model.Channel) bool {
	if _, ok := r.byName[c.Name()]; ok {
		return false
	}
	r.byName[c.Name()] = c
	return true
}

func (r *Channels) Get(name string) (*model.Channel, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Videos is an in-memory id→video table of non-owning handles.
type Videos struct {
	byID map[int64]*model.Video
}

func NewVideos() *Videos {
	return &Videos{byID: make(map[int64]*model.Video)}
}

func (r *Videos) Put(v *model.Video) {
	r.byID[v.ID()] = v
}

func (r *Videos) Get(id int64) (*model.Video, bool) {
	v, ok := r.byID[id]
	return v, ok
}

func (r *Videos) All() []*model.Video {
	out := make([]*model.Video, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
