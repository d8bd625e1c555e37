package web

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// RoomPage renders the shell for a single room. The page is static; the
// client script subscribes to the room's event stream and re-renders on
// every snapshot.
func RoomPage(roomID, name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := name
		if title == "" {
			title = roomID
		}
		fmt.Fprintf(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>%s · Word Wolf</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body data-room-id="%s">
    <main class="shell">
      <header class="hero">
        <a class="back" href="/">&larr; All rooms</a>
        <h1>%s</h1>
        <span id="phaseBadge" class="tag">connecting&hellip;</span>
      </header>
`,
			html.EscapeString(title),
			html.EscapeString(roomID),
			html.EscapeString(title),
		)
		_, _ = io.WriteString(w, `
      <section class="panel" id="joinPanel">
        <form id="joinForm" class="join-form">
          <input name="name" placeholder="Your name" maxlength="20" autocomplete="off"/>
          <button type="submit" class="primary">Join</button>
        </form>
      </section>

      <section class="panel">
        <h2>Players</h2>
        <ul id="playerList" class="player-list"></ul>
        <div id="themeCard" class="theme-card hidden"></div>
        <div class="actions">
          <button id="readyBtn" class="primary hidden">Ready</button>
          <button id="confirmBtn" class="primary hidden">Got my word</button>
          <button id="startVoteBtn" class="hidden">Start voting</button>
          <button id="restartBtn" class="hidden">Play again</button>
        </div>
        <div id="timer" class="timer hidden"></div>
        <div id="outcome" class="outcome hidden"></div>
      </section>

      <section class="panel">
        <h2>Chat</h2>
        <ul id="chatLog" class="chat-log"></ul>
        <form id="chatForm" class="chat-form">
          <input name="message" placeholder="Say something" maxlength="280" autocomplete="off"/>
          <button type="submit">Send</button>
        </form>
      </section>
    </main>
    <script src="/static/room.js"></script>
  </body>
</html>
`)
		return nil
	})
}
