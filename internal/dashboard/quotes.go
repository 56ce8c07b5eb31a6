package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// CurrentQuote returns the quote being shown.
func (a *App) CurrentQuote() (types.Quote, bool) {
	if a.QuoteIndex < 0 || a.QuoteIndex >= len(a.Quotes) {
		return types.Quote{}, false
	}
	return a.Quotes[a.QuoteIndex], true
}

// RandomQuote picks a new current quote uniformly at random. An empty
// collection is reseeded with the default quotes first.
func (a *App) RandomQuote() (types.Quote, error) {
	if len(a.Quotes) == 0 {
		a.Quotes = types.DefaultQuotes()
		if err := a.saveQuotes(); err != nil {
			return types.Quote{}, err
		}
	}
	a.QuoteIndex = a.rand.IntN(len(a.Quotes))
	return a.Quotes[a.QuoteIndex], nil
}

// SelectQuote makes the quote at index current.
func (a *App) SelectQuote(index int) error {
	if index < 0 || index >= len(a.Quotes) {
		return fmt.Errorf("%w: quote %d", types.ErrInvalidIndex, index)
	}
	a.QuoteIndex = index
	return nil
}

// AddQuote appends a quote and makes it current. A blank author is stored as
// the default author.
func (a *App) AddQuote(text, author string) (types.Quote, error) {
	q, err := a.newQuote(text, author)
	if err != nil {
		return types.Quote{}, err
	}
	a.Quotes = append(a.Quotes, q)
	a.QuoteIndex = len(a.Quotes) - 1
	if err := a.saveQuotes(); err != nil {
		return types.Quote{}, err
	}
	return q, nil
}

// EditQuote replaces the text and author of the quote at index.
func (a *App) EditQuote(index int, text, author string) error {
	if index < 0 || index >= len(a.Quotes) {
		return fmt.Errorf("%w: quote %d", types.ErrInvalidIndex, index)
	}
	q, err := a.newQuote(text, author)
	if err != nil {
		return err
	}
	a.Quotes[index].Text = q.Text
	a.Quotes[index].Author = q.Author
	return a.saveQuotes()
}

// DeleteQuote removes the quote at index. The last quote cannot be deleted.
// The current index follows the quote it pointed at and wraps to the first
// quote when it falls off the end.
func (a *App) DeleteQuote(index int) error {
	if len(a.Quotes) <= 1 {
		return types.ErrLastQuote
	}
	if index < 0 || index >= len(a.Quotes) {
		return fmt.Errorf("%w: quote %d", types.ErrInvalidIndex, index)
	}
	a.Quotes = slices.Delete(a.Quotes, index, index+1)
	if index < a.QuoteIndex {
		a.QuoteIndex--
	}
	if a.QuoteIndex >= len(a.Quotes) {
		a.QuoteIndex = 0
	}
	return a.saveQuotes()
}

func (a *App) newQuote(text, author string) (types.Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.Quote{}, types.ErrEmptyText
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = types.DefaultAuthor
	}
	return types.Quote{ID: a.ids.next(), Text: text, Author: author}, nil
}
