package posts

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/airesearchhub/site/content"
	"github.com/airesearchhub/site/pkg/cli"
	"github.com/airesearchhub/site/pkg/portal"
)

var ErrPostNotFound = errors.New("post not found")

type Handler struct {
	Posts *content.Posts
	out   io.Writer
}

func MakeHandler(posts *content.Posts, out io.Writer) Handler {
	return Handler{
		Posts: posts,
		out:   out,
	}
}

// List prints one line per post, newest first. Dates that are not plain
// YYYY-MM-DD are flagged since they may sort out of order.
func (h Handler) List() error {
	posts, err := h.Posts.All()

	if err != nil {
		return fmt.Errorf("handler: could not list posts: %w", err)
	}

	if len(posts) == 0 {
		h.println(cli.YellowColour, "No posts found in "+h.Posts.Store.Dir)

		return nil
	}

	for _, post := range posts {
		h.print(cli.GrayColour, fmt.Sprintf("%-10s  ", displayDate(post.Date)))
		h.print(cli.CyanColour, fmt.Sprintf("%-11s  ", post.ReadingTime))
		h.print(cli.MagentaColour, post.Slug)
		h.println(cli.WhiteColour, "  "+post.Title)

		if post.Date != "" && !isCalendarDate(post.Date) {
			h.println(cli.YellowColour, fmt.Sprintf("  date [%s] is not YYYY-MM-DD and may sort out of order", post.Date))
		}
	}

	h.println(cli.GreenColour, fmt.Sprintf("\n%d post(s).", len(posts)))

	return nil
}

func (h Handler) Show(slug string) error {
	post, err := h.Posts.FindBy(slug)

	if err != nil {
		return fmt.Errorf("handler: could not read post [%s]: %w", slug, err)
	}

	if post == nil {
		h.println(cli.YellowColour, fmt.Sprintf("The given post [%s] does not exist.", slug))

		return ErrPostNotFound
	}

	h.field("Slug", post.Slug)
	h.field("Title", post.Title)
	h.field("Description", post.Description)
	h.field("Date", post.Date)
	h.field("Tags", strings.Join(post.Tags, ", "))
	h.field("Reading time", post.ReadingTime)

	return nil
}

func (h Handler) field(label, value string) {
	if value == "" {
		value = "-"
	}

	h.print(cli.BlueColour, fmt.Sprintf("%-14s", label+":"))
	h.println(cli.WhiteColour, value)
}

func (h Handler) print(colour, message string) {
	cli.Print(h.out, colour, message)
}

func (h Handler) println(colour, message string) {
	cli.Println(h.out, colour, message)
}

func displayDate(date string) string {
	if date == "" {
		return "undated"
	}

	return date
}

func isCalendarDate(date string) bool {
	_, err := portal.NewStringable(date).ToDatetime()

	return err == nil
}
