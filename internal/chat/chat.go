package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/newslyhq/newsly/pkg/models"
)

// DefaultMaxResults caps how many articles a single reply carries.
const DefaultMaxResults = 3

// Canned assistant responses.
const (
	fallbackInstruction = "Please ask in the format: 'Find news on X'. For example: 'Find news on climate change'."
	signOff             = "Hope this helps!"
)

// Searcher is the slice of the search pipeline the assistant needs.
type Searcher interface {
	Lookup(ctx context.Context, keyword string, limit int) ([]models.Article, error)
}

// Service turns chat messages into replies backed by news lookups.
type Service struct {
	searcher   Searcher
	maxResults int
	log        *slog.Logger
	now        func() time.Time
}

// NewService builds a chat service on top of the search pipeline.
// maxResults values below one fall back to DefaultMaxResults.
func NewService(searcher Searcher, maxResults int, logger *slog.Logger) *Service {
	if maxResults < 1 {
		maxResults = DefaultMaxResults
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		searcher:   searcher,
		maxResults: maxResults,
		log:        logger,
		now:        time.Now,
	}
}

// Reply records the user message on the session, produces the assistant
// response, records that too, and returns it. Every input yields a
// reply; malformed queries and failed lookups produce canned text
// rather than errors.
func (s *Service) Reply(ctx context.Context, sess *Session, input string) Message {
	sess.append(Message{Role: RoleUser, Content: input, At: s.now().UTC()})

	reply := s.respond(ctx, input)
	sess.append(reply)
	return reply
}

func (s *Service) respond(ctx context.Context, input string) Message {
	at := s.now().UTC()

	keyword, err := ParseQuery(input)
	if err != nil {
		return Message{Role: RoleAssistant, Content: fallbackInstruction, At: at}
	}

	articles, err := s.searcher.Lookup(ctx, keyword, s.maxResults)
	if err != nil {
		s.log.Warn("chat lookup failed", "keyword", keyword, "error", err)
		articles = nil
	}
	if len(articles) == 0 {
		return Message{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("Sorry, I couldn't find any news on '%s'.", keyword),
			At:      at,
		}
	}

	projected := make([]models.ChatArticle, len(articles))
	for i, a := range articles {
		projected[i] = models.ChatProjection(a)
	}
	return Message{
		Role:     RoleAssistant,
		Content:  fmt.Sprintf("Here are some articles about '%s':\n\n%s", keyword, signOff),
		Articles: projected,
		At:       at,
	}
}
