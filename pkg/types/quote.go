package types

// DefaultAuthor is used when a quote is saved without an author.
const DefaultAuthor = "Unknown"

// Quote is a saved quotation.
type Quote struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

var defaultQuotes = []Quote{
	{ID: 1, Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{ID: 2, Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{ID: 3, Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{ID: 4, Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{ID: 5, Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{ID: 6, Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{ID: 7, Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{ID: 8, Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
	{ID: 9, Text: "Your time is limited, don't waste it living someone else's life.", Author: "Steve Jobs"},
	{ID: 10, Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
}

// DefaultQuotes returns a fresh copy of the seeded quotes.
func DefaultQuotes() []Quote {
	out := make([]Quote, len(defaultQuotes))
	copy(out, defaultQuotes)
	return out
}
