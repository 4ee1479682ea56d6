// Package knowledge answers small talk and help queries that did not
// classify as a command.
//
// Lookup is two stage. Stage one is an exact keyword check with word
// boundaries, applied only to short queries so a long unrelated sentence
// containing "bill" does not trigger the billing guide. Stage two is an
// approximate similarity search over the topic/keyword corpus under a
// fixed cutoff. Responses may be static text or a generator evaluated at
// call time; generated text is never cached.
package knowledge

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"tilltalk/internal/core/fuzzy"
)

const (
	// stage one only fires on queries shorter than this many words
	maxDirectWords = 6
	// stage two acceptance floor on similarity
	fuzzyCutoff = 0.75
)

// Entry is one answerable topic
type Entry struct {
	Topics   []string
	Keywords []string
	Respond  func() string
}

// Base is the fallback corpus. Safe for concurrent use; the entry set is
// fixed after New.
type Base struct {
	entries []Entry
	now     func() time.Time
	intn    func(n int) int
}

// Option adjusts a Base, used by tests to pin time and randomness
type Option func(*Base)

// WithClock overrides the wall clock used by time-of-day replies
func WithClock(now func() time.Time) Option {
	return func(b *Base) { b.now = now }
}

// WithRand overrides the picker used by randomized replies
func WithRand(intn func(n int) int) Option {
	return func(b *Base) { b.intn = intn }
}

// New builds the corpus
func New(opts ...Option) *Base {
	b := &Base{
		now:  time.Now,
		intn: rand.IntN,
	}
	for _, o := range opts {
		o(b)
	}
	b.entries = b.buildEntries()
	return b
}

// Ask answers query or returns ok=false, signaling the caller to present
// a generic "didn't understand" response.
func (b *Base) Ask(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	words := strings.Fields(q)

	// stage one: exact word hit, short queries only
	if len(words) < maxDirectWords {
		wordSet := make(map[string]struct{}, len(words))
		for _, w := range words {
			wordSet[strings.Trim(w, ".,!?")] = struct{}{}
		}
		for _, e := range b.entries {
			for _, k := range e.Keywords {
				if _, ok := wordSet[k]; ok {
					return e.Respond(), true
				}
			}
		}
	}

	// stage two: approximate match over topics and keywords. Per-word
	// keyword scoring keeps the same short-query guard as stage one so a
	// long unrelated sentence cannot ride in on a single word.
	best, bestScore := -1, 0.0
	for i, e := range b.entries {
		for _, t := range e.Topics {
			if s := fuzzy.Score(q, strings.ToLower(t)); s > bestScore {
				best, bestScore = i, s
			}
		}
		if len(words) >= maxDirectWords {
			continue
		}
		for _, k := range e.Keywords {
			for _, w := range words {
				if s := fuzzy.Similarity(w, k); s > bestScore {
					best, bestScore = i, s
				}
			}
		}
	}
	if best >= 0 && bestScore >= fuzzyCutoff {
		return b.entries[best].Respond(), true
	}
	return "", false
}

func respText(s string) func() string { return func() string { return s } }

func (b *Base) buildEntries() []Entry {
	return []Entry{
		{
			Topics:   []string{"Hello", "Hi", "Hey", "Greetings"},
			Keywords: []string{"hello", "hi", "hey", "greetings", "yo", "sup"},
			Respond: func() string {
				hour := b.now().Hour()
				tod := "Evening"
				switch {
				case hour < 12:
					tod = "Morning"
				case hour < 17:
					tod = "Afternoon"
				}
				return fmt.Sprintf("👋 **Good %s!**\nI'm ready to help. Try \"New Bill\" or \"Show Profit\".", tod)
			},
		},
		{
			Topics:   []string{"Positive Feedback", "Compliment"},
			Keywords: []string{"great", "awesome", "good", "nice", "cool", "thanks", "thank", "amazing", "excellent", "perfect"},
			Respond: func() string {
				replies := []string{
					"😊 **Glad I could help!** Let me know if you need anything else.",
					"🚀 **Awesome!** I'm here to keep things running smoothly.",
					"🙌 **Great to hear!** Making your store smarter, one command at a time.",
					"🤖 **You're welcome!** Just doing my job.",
				}
				return replies[b.intn(len(replies))]
			},
		},
		{
			Topics:   []string{"Who are you", "Identity"},
			Keywords: []string{"who", "name", "bot", "identity", "created"},
			Respond:  respText("🤖 **I am the till assistant.**\nDesigned to manage your store efficiently. I don't sleep, I don't take breaks, and I love data."),
		},
		{
			Topics:   []string{"How are you", "Status"},
			Keywords: []string{"how", "doing", "status"},
			Respond:  respText("⚡ **Systems Operational.**\nDatabase: Connected\nSync: Active\nMood: Ambitious"),
		},
		{
			Topics:   []string{"Joke", "Fun"},
			Keywords: []string{"joke", "funny", "laugh"},
			Respond: func() string {
				jokes := []string{
					"Why did the database break up with the server? She found someone with more cache.",
					"Reviewing sales data... 404 Profit Not Found. Just kidding! 🤑",
					"I would tell you a UDP joke, but you might not get it.",
				}
				return "😂 **Here's one:**\n" + jokes[b.intn(len(jokes))]
			},
		},
		{
			Topics:   []string{"Billing Help", "How to bill"},
			Keywords: []string{"bill", "invoice", "sale", "sell", "checkout"},
			Respond:  respText("🧾 **Billing Guide:**\n1. Scan product or press `F2` to search.\n2. Adjust qty with `+` / `-` keys.\n3. Press `F12` to Checkout.\n\n*Shortcut: Say 'Add 2 Milk' to skip steps.*"),
		},
		{
			Topics:   []string{"Search Product", "Find Item"},
			Keywords: []string{"search", "find", "lookup", "price", "cost"},
			Respond:  respText("🔍 **Product Search:**\nPress `F2` to open the global search bar. You can search by Name, Barcode, or even dynamic Alias."),
		},
		{
			Topics:   []string{"Return Policy", "Refunds"},
			Keywords: []string{"return", "refund", "exchange", "policy"},
			Respond:  respText("🔄 **Return Policy:**\nItems can be returned within 7 days with the original bill. Processing a return? Go to **Sales History** > **Select Bill** > **Return Items**."),
		},
		{
			Topics:   []string{"Printer Issue", "Print fail"},
			Keywords: []string{"print", "printer", "paper", "jam", "receipt"},
			Respond:  respText("🖨️ **Printer Troubleshooting:**\n1. Check if printer is ON and connected.\n2. Verify paper roll is not empty.\n3. Go to **Settings > Hardware** to test connection."),
		},
		{
			Topics:   []string{"Scanner Issue"},
			Keywords: []string{"scan", "scanner", "barcode", "reader"},
			Respond:  respText("🔫 **Scanner Fix:**\nEnsure the scanner USB is plugged in tightly. If it beeps but doesn't enter text, click on the search box to focus it."),
		},
		{
			Topics:   []string{"Login Failed", "Password reset"},
			Keywords: []string{"login", "password", "access", "user"},
			Respond:  respText("🔐 **Access Control:**\nIf you forgot your PIN, please contact the Store Administrator."),
		},
		{
			Topics:   []string{"Profit", "Margin"},
			Keywords: []string{"profit", "margin", "earn", "revenue"},
			Respond:  respText("💰 **Profitability:**\nI track your purchase vs sales price. Ask *\"Show profit today\"* to see your net earnings instantly."),
		},
		{
			Topics:   []string{"Tax", "GST"},
			Keywords: []string{"tax", "gst", "vat", "duty"},
			Respond:  respText("🏛️ **Tax Management:**\nAll sales are recorded with GST. You can export a **GSTR-1** compatible report from the Reports page."),
		},
	}
}
