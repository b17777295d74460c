package forum

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrEmptyMessage means the trimmed text was empty; nothing is written.
var ErrEmptyMessage = errors.New("message text is empty")

// MessageStore is the repository surface the service depends on.
type MessageStore interface {
	List(ctx context.Context) ([]*Message, error)
	Insert(ctx context.Context, message *Message) error
}

type ForumService struct {
	store MessageStore
	now   func() time.Time
}

func NewForumService(store MessageStore) *ForumService {
	return &ForumService{store: store, now: time.Now}
}

func (s *ForumService) List(ctx context.Context) ([]*Message, error) {
	return s.store.List(ctx)
}

// Post appends a message authored by the given identity. Whitespace-only
// text is a no-op error, not a stored document.
func (s *ForumService) Post(ctx context.Context, userID, userName, text string) (*Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	message := &Message{
		Text:      text,
		Timestamp: s.now(),
		UserID:    userID,
		UserName:  userName,
	}
	if err := s.store.Insert(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}
