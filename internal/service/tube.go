// Package service is the business layer: it resolves names and ids against
// the registries, invokes the entity operations, and reports every outcome
// as a result.Result.
//
// The layering follows the usual three layers, with the interactive shell
// standing where an HTTP handler would:
//
//	Shell (internal/menu)  → collects input, renders results
//	Service (this package) → resolves lookups, orchestrates, logs
//	Entities + registries  → own the state and the invariants
//
// The service holds no session: "who is logged in" is the shell's pointer,
// passed in as a *model.User argument (nil when nobody is). That is why no
// method here ever returns StatusNotLoggedIn — gating login-required actions
// happens before the call.
package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kavya/mytube/internal/ident"
	"github.com/kavya/mytube/internal/model"
	"github.com/kavya/mytube/internal/registry"
	"github.com/kavya/mytube/internal/result"
	"github.com/kavya/mytube/internal/timing"
)

// VideoSummary is the row shape of every video listing (search, catalog,
// channel uploads, playlist contents).
type VideoSummary struct {
	ID      int64
	Title   string
	Channel string
	Views   int64
}

// Tube exposes the operations of the service over the entity graph.
type Tube struct {
	users    registry.Users
	channels registry.Channels
	videos   registry.Videos
	index    SearchIndex
	gen      *ident.Generator
	perf     *timing.Toggle
	logger   *slog.Logger
}

// New wires the service. All dependencies are injected; the caller (the
// composition root in cmd/mytube, or a test) decides the implementations.
func New(
	users registry.Users,
	channels registry.Channels,
	videos registry.Videos,
	index SearchIndex,
	gen *ident.Generator,
	perf *timing.Toggle,
	logger *slog.Logger,
) *Tube {
	return &Tube{
		users:    users,
		channels: channels,
		videos:   videos,
		index:    index,
		gen:      gen,
		perf:     perf,
		logger:   logger,
	}
}

// Perf exposes the measurement toggle so the shell can flip it.
func (t *Tube) Perf() *timing.Toggle {
	return t.perf
}

// RegisterUser creates a new user account.
func (t *Tube) RegisterUser(name string) result.Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return result.InvalidInput("Username is required")
	}
	if !t.users.Add(model.NewUser(name)) {
		return result.AlreadyExists("User exists")
	}
	t.logger.Info("user registered", slog.String("user", name))
	return result.Success("Registered user: " + name)
}

// Login looks the user up by name. The returned pointer is the session the
// caller holds on to; the service keeps nothing.
func (t *Tube) Login(name string) (*model.User, result.Result) {
	u, ok := t.users.Get(strings.TrimSpace(name))
	if !ok {
		return nil, result.NotFound("No such user. Register first.")
	}
	return u, result.Success("Logged in as " + u.Username())
}

// CreateChannel creates a channel owned by the given username. Channel
// names are globally unique.
func (t *Tube) CreateChannel(name, owner, description string) result.Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return result.InvalidInput("Channel name is required")
	}
	if !t.channels.Add(model.NewChannel(name, owner, description, t.gen)) {
		return result.AlreadyExists("Channel exists")
	}
	t.logger.Info("channel created",
		slog.String("channel", name),
		slog.String("owner", owner),
	)
	return result.Success(fmt.Sprintf("Channel %q created", name))
}

// Channel resolves a channel by name. Lookup only, used by the shell for
// the upload ownership check and for listings.
func (t *Tube) Channel(name string) (*model.Channel, bool) {
	return t.channels.Get(name)
}

// Subscribe subscribes the user to the named channel.
func (t *Tube) Subscribe(user *model.User, channelName string) result.Result {
	ch, ok := t.channels.Get(channelName)
	if !ok {
		return result.NotFound("Channel not found")
	}
	return user.SubscribeChannel(ch)
}

func summarize(v *model.Video) VideoSummary {
	return VideoSummary{
		ID:      v.ID(),
		Title:   v.Title(),
		Channel: v.Uploader(),
		Views:   v.Views(),
	}
}
