// Package registry defines the global lookup tables the service resolves
// names and ids against: name→user, name→channel, id→video.
//
// These are interfaces, not concrete maps, for the same reason the rest of
// the system injects its dependencies: the service layer is tested against
// hand-written fakes, and the in-memory implementation under registry/memory
// is swappable without touching business logic.
//
// OWNERSHIP NOTE:
// The video index is NOT an owning collection. Videos belong to the channel
// that uploaded them; the index holds handles so callers can resolve a
// numeric id without knowing the channel. Deleting a channel (unsupported
// today) would have to purge its videos from this index too.
package registry

import "github.com/kavya/mytube/internal/model"

// Users resolves usernames to user entities.
type Users interface {
	// Add registers a user under its username. Reports false when the
	// name is already taken, in which case nothing changes.
	Add(u *model.User) bool
	Get(username string) (*model.User, bool)
}

// Channels resolves channel names to channel entities.
type Channels interface {
	Add(c *model.Channel) bool
	Get(name string) (*model.Channel, bool)
}

// Videos resolves video ids to non-owning video handles.
type Videos interface {
	// Put registers a video under its id. Ids are unique by construction,
	// so Put never collides.
	Put(v *model.Video)
	Get(id int64) (*model.Video, bool)
	// All returns every registered video in ascending id order, which is
	// also upload order since ids are monotonic.
	All() []*model.Video
}
