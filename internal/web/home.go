package web

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// RoomSummary is one row of the lobby listing on the home page.
type RoomSummary struct {
	ID          string
	Name        string
	PlayerCount int
	MaxPlayers  int
	Phase       string
}

func Home(rooms []RoomSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Word Wolf</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">Word Wolf</span>
        <h1>Find the odd word out.</h1>
        <p>Create a room or join one below. Everyone gets a word; one of you got the wrong one.</p>
      </header>

      <section class="panel">
        <h2>Create a room</h2>
        <form id="createForm" class="create-form">
          <input name="name" placeholder="Room name" autocomplete="off"/>
          <input name="max_players" type="number" value="4" min="2" max="12"/>
          <input name="wolf_count" type="number" value="1" min="1"/>
          <select name="category">
            <option value="food">Food</option>
            <option value="animal">Animal</option>
            <option value="place">Place</option>
            <option value="object">Object</option>
          </select>
          <button type="submit" class="primary">Create room</button>
        </form>
        <div id="createResult" class="result"></div>
      </section>

      <section class="panel">
        <h2>Open rooms</h2>
        <ul class="room-list">
`)
		for _, room := range rooms {
			name := room.Name
			if name == "" {
				name = room.ID
			}
			fmt.Fprintf(w, `          <li><a href="/rooms/%s">%s</a> <span>%d/%d players · %s</span></li>
`,
				html.EscapeString(room.ID),
				html.EscapeString(name),
				room.PlayerCount,
				room.MaxPlayers,
				html.EscapeString(room.Phase),
			)
		}
		_, _ = io.WriteString(w, `        </ul>
      </section>
    </main>
    <script src="/static/home.js"></script>
  </body>
</html>
`)
		return nil
	})
}
