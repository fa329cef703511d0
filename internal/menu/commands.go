package menu

import (
	"context"
	"fmt"
	"log/slog"
)

// commandTable defines the menu. Codes are part of the user interface and
// stay stable; order here is display order.
func (s *Shell) commandTable() []command {
	return []command{
		{1, "Register", false, s.register},
		{2, "Login", false, s.login},
		{3, "Logout", false, s.logout},
		{4, "Create channel", true, s.createChannel},
		{5, "Upload video to your channel", true, s.upload},
		{6, "Subscribe to channel", true, s.subscribe},
		{7, "Watch video by id", false, s.watch},
		{8, "Add comment to video", true, s.addComment},
		{9, "Like comment on video", true, s.likeComment},
		{10, "List comments on video", false, s.listComments},
		{11, "Search videos by title", false, s.search},
		{12, "Create playlist", true, s.createPlaylist},
		{13, "Add video to playlist", true, s.addToPlaylist},
		{14, "Play playlist", true, s.playPlaylist},
		{15, "List all videos", false, s.listAllVideos},
		{16, "List channel uploads", false, s.listChannelUploads},
		{17, "Toggle performance logging", false, s.togglePerf},
	}
}

func (s *Shell) register(context.Context) {
	name, _ := s.readLine("Choose username: ")
	s.printResult(s.tube.RegisterUser(name))
}

func (s *Shell) login(context.Context) {
	name, _ := s.readLine("Username: ")
	user, res := s.tube.Login(name)
	if res.OK() {
		s.session = user
		s.logger.Info("user logged in",
			slog.String("session", s.sessionID),
			slog.String("user", user.Username()),
		)
	}
	s.printResult(res)
}

func (s *Shell) logout(context.Context) {
	if s.session == nil {
		s.println("Not logged in")
		return
	}
	s.println("Logged out " + s.session.Username())
	s.session = nil
}

func (s *Shell) createChannel(context.Context) {
	name, _ := s.readLine("Channel name: ")
	desc, _ := s.readLine("Description: ")
	s.printResult(s.tube.CreateChannel(name, s.session.Username(), desc))
}

func (s *Shell) upload(ctx context.Context) {
	name, _ := s.readLine("Your channel name: ")
	ch, ok := s.tube.Channel(name)
	if !ok {
		s.println("Channel not found")
		return
	}
	// Ownership is a session concern, so the shell checks it: the core
	// accepts uploads to any existing channel.
	if ch.Owner() != s.session.Username() {
		s.println("You do not own this channel")
		return
	}
	title, _ := s.readLine("Video title: ")
	dur := s.readInt("Duration seconds: ")
	s.printResult(s.tube.Upload(ctx, name, title, dur))
}

func (s *Shell) subscribe(context.Context) {
	name, _ := s.readLine("Channel name to subscribe: ")
	s.printResult(s.tube.Subscribe(s.session, name))
}

// watch works logged out too: the view still counts, it just lands in
// nobody's history.
func (s *Shell) watch(context.Context) {
	id := s.readID("Video id to watch: ")
	s.printResult(s.tube.Watch(s.session, id))
}

func (s *Shell) addComment(context.Context) {
	id := s.readID("Video id to comment on: ")
	text, _ := s.readLine("Comment text: ")
	s.printResult(s.tube.AddComment(s.session, id, text))
}

func (s *Shell) likeComment(context.Context) {
	vid := s.readID("Video id: ")
	cid := s.readID("Comment id to like: ")
	s.printResult(s.tube.LikeComment(s.session, vid, cid))
}

func (s *Shell) listComments(context.Context) {
	id := s.readID("Video id to list comments: ")
	comments, res := s.tube.Comments(id)
	if !res.OK() {
		s.printResult(res)
		return
	}
	if len(comments) == 0 {
		s.println("No comments")
		return
	}
	s.println(res.Message + ":")
	for _, c := range comments {
		fmt.Fprintf(s.out, "  [%d] %s (%d likes): %s\n", c.ID(), c.Author(), c.Likes(), c.Text())
	}
}

func (s *Shell) search(ctx context.Context) {
	query, _ := s.readLine("Search keyword: ")
	results, err := s.tube.Search(ctx, query)
	if err != nil {
		s.logger.Error("search failed",
			slog.String("session", s.sessionID),
			slog.String("error", err.Error()),
		)
		s.println("Search is unavailable")
		return
	}
	s.println("Results:")
	for _, v := range results {
		fmt.Fprintf(s.out, "  [%d] %s (channel: %s)\n", v.ID, v.Title, v.Channel)
	}
}

func (s *Shell) createPlaylist(context.Context) {
	name, _ := s.readLine("Playlist name: ")
	s.printResult(s.tube.CreatePlaylist(s.session, name))
}

func (s *Shell) addToPlaylist(context.Context) {
	name, _ := s.readLine("Playlist name: ")
	id := s.readID("Video id to add: ")
	s.printResult(s.tube.AddToPlaylist(s.session, name, id))
}

func (s *Shell) playPlaylist(context.Context) {
	name, _ := s.readLine("Playlist name: ")
	entries, res := s.tube.PlayPlaylist(s.session, name)
	if !res.OK() {
		s.printResult(res)
		return
	}
	s.println("Playlist: " + name)
	if len(entries) == 0 {
		s.println("  (empty)")
	}
	for i, v := range entries {
		fmt.Fprintf(s.out, "  [%d] %s (id=%d)\n", i+1, v.Title, v.ID)
	}
	s.printResult(res)
}

func (s *Shell) listAllVideos(context.Context) {
	s.println("All videos:")
	for _, v := range s.tube.ListAllVideos() {
		fmt.Fprintf(s.out, "  [%d] %s (channel: %s, views: %d)\n", v.ID, v.Title, v.Channel, v.Views)
	}
}

func (s *Shell) listChannelUploads(context.Context) {
	name, _ := s.readLine("Channel name: ")
	uploads, ok := s.tube.ListChannelUploads(name)
	if !ok {
		s.println("Channel not found")
		return
	}
	if len(uploads) == 0 {
		s.println("No uploads")
		return
	}
	s.println("Uploads for channel " + name + ":")
	for _, v := range uploads {
		fmt.Fprintf(s.out, "  [%d] %s (views: %d)\n", v.ID, v.Title, v.Views)
	}
}

func (s *Shell) togglePerf(context.Context) {
	if s.tube.Perf().Flip() {
		s.println("Performance logging ENABLED")
	} else {
		s.println("Performance logging DISABLED")
	}
}
