package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"whatif-server/internal"
)

const sessionHelp = `Commands:
  story <prompt>     generate a short story
  comic <prompt>     generate a comic and open it on page 1
  next | prev        turn the page of the open comic
  page <n>           jump to page n of the open comic
  list [story|comic] list what was generated this session
  favs [story|comic] list favorites
  fav <id>           toggle favorite
  show <id>          print an entry (comics open on page 1)
  save <id> [dir]    write an entry to what-if-<kind>-<id>.txt
  examples           print example prompts
  help               show this help
  quit               leave the session`

// session is an interactive loop over one in-memory shelf
type session struct {
	generator *internal.Generator
	shelf     *internal.Shelf
	cursor    *internal.PageCursor
	out       io.Writer
}

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive session with favorites and page-by-page comics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{
				generator: a.generator,
				shelf:     internal.NewShelf(),
				out:       cmd.OutOrStdout(),
			}
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	if s.generator.MockMode() {
		fmt.Fprintln(s.out, "Running in mock mode (no GEMINI_API_KEY).")
	}
	fmt.Fprintln(s.out, "Type a command, or 'help'.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}

		quit, err := s.handle(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one command line and reports whether the session should end
func (s *session) handle(ctx context.Context, line string) (bool, error) {
	command, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	command = strings.ToLower(command)
	rest = strings.TrimSpace(rest)

	switch command {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
	case "examples":
		for _, p := range examplePrompts {
			fmt.Fprintln(s.out, p)
		}
	case "story", "comic":
		return false, s.generate(ctx, internal.Kind(command), rest)
	case "next":
		return false, s.turn((*internal.PageCursor).Next)
	case "prev":
		return false, s.turn((*internal.PageCursor).Prev)
	case "page":
		var n int
		if _, err := fmt.Sscanf(rest, "%d", &n); err != nil {
			return false, fmt.Errorf("%w: page needs a number", internal.ErrInvalidInput)
		}
		return false, s.turn(func(c *internal.PageCursor) bool { c.Seek(n); return true })
	case "list", "favs":
		kind, err := optionalKind(rest)
		if err != nil {
			return false, err
		}
		entries := s.shelf.List(kind)
		if command == "favs" {
			entries = s.shelf.Favorites(kind)
		}
		s.printEntries(entries)
	case "fav":
		entry, err := s.shelf.ToggleFavorite(rest)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "%s favorite: %t\n", entry.ID, entry.IsFavorite)
	case "show":
		entry, err := s.shelf.Get(rest)
		if err != nil {
			return false, err
		}
		s.open(entry)
	case "save":
		id, dir, _ := strings.Cut(rest, " ")
		return false, s.save(id, strings.TrimSpace(dir))
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", command)
	}
	return false, nil
}

func (s *session) generate(ctx context.Context, kind internal.Kind, prompt string) error {
	if prompt == "" {
		return fmt.Errorf("%w: please enter a prompt", internal.ErrInvalidInput)
	}

	result := s.generator.Generate(ctx, prompt, kind)
	entry := s.shelf.Add(kind, prompt, result.Text)
	fmt.Fprintf(s.out, "Generated %s %s (%s)\n", kind, entry.ID, result.Source)
	s.open(entry)
	return nil
}

// open prints an entry; comics are shown one page at a time
func (s *session) open(entry internal.Entry) {
	if entry.Kind != internal.KindComic {
		s.cursor = nil
		fmt.Fprintln(s.out, entry.Content)
		return
	}
	s.cursor = internal.NewPageCursor(entry.Content)
	s.printPage()
}

func (s *session) turn(move func(*internal.PageCursor) bool) error {
	if s.cursor == nil {
		return errors.New("no comic is open")
	}
	if !move(s.cursor) {
		return fmt.Errorf("already on page %d of %d", s.cursor.Current(), s.cursor.Total())
	}
	s.printPage()
	return nil
}

func (s *session) printPage() {
	fmt.Fprintf(s.out, "Page %d of %d\n%s\n", s.cursor.Current(), s.cursor.Total(), strings.TrimSpace(s.cursor.Page()))
}

func (s *session) printEntries(entries []internal.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "nothing here yet")
		return
	}
	for _, e := range entries {
		star := " "
		if e.IsFavorite {
			star = "*"
		}
		fmt.Fprintf(s.out, "%s %s %-5s %s  %s\n", star, e.ID, e.Kind, e.CreatedAt.Format("15:04:05"), e.Prompt)
	}
}

func (s *session) save(id, dir string) error {
	entry, err := s.shelf.Get(id)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, entry.FileName())
	if err := os.WriteFile(path, []byte(entry.Export()), 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	fmt.Fprintf(s.out, "saved %s\n", path)
	return nil
}

func optionalKind(s string) (internal.Kind, error) {
	if s == "" {
		return "", nil
	}
	return internal.ParseKind(s)
}
