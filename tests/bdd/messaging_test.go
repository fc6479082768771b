package bdd

import (
	"context"
	"fmt"
	"os"
	"testing"

	"workzup_backend/internal/chat/domain"
	"workzup_backend/internal/chat/repository"

	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Paths:  []string{"./featureFiles"},
			Format: "pretty",
			Output: os.Stdout,
		},
	}

	if suite.Run() != 0 {
		t.Fail()
	}
}

// InitializeScenario register Gherkin steps
func InitializeScenario(s *godog.ScenarioContext) {
	w := &messagingWorld{}
	s.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		w.reset()
		return ctx, nil
	})

	s.Step(`^a conversation between "([^"]*)" and "([^"]*)"$`, w.aConversationBetween)
	s.Step(`^"([^"]*)" sends "([^"]*)" to the conversation$`, w.sendsToTheConversation)
	s.Step(`^"([^"]*)" has (\d+) unread messages?$`, w.hasUnreadMessages)
	s.Step(`^"([^"]*)" views the conversation$`, w.viewsTheConversation)
	s.Step(`^the message "([^"]*)" is read by "([^"]*)"$`, w.theMessageIsReadBy)
	s.Step(`^"([^"]*)" replies "([^"]*)" to the message "([^"]*)"$`, w.repliesToTheMessage)
	s.Step(`^the conversation has (\d+) messages$`, w.theConversationHasMessages)
	s.Step(`^the send is rejected$`, w.theSendIsRejected)
	s.Step(`^"([^"]*)" starts typing$`, w.startsTyping)
	s.Step(`^"([^"]*)" stops typing$`, w.stopsTyping)
	s.Step(`^"([^"]*)" sees "([^"]*)" typing$`, w.seesTyping)
	s.Step(`^"([^"]*)" sees nobody typing$`, w.seesNobodyTyping)
}

// messagingWorld shared state across one scenario
type messagingWorld struct {
	store          repository.ConversationStore
	conversationID string
	messagesByText map[string]string
	sent           int
	lastSendErr    error
}

func (w *messagingWorld) reset() {
	w.store = repository.NewMemoryConversationStore()
	w.conversationID = ""
	w.messagesByText = map[string]string{}
	w.sent = 0
	w.lastSendErr = nil
}

func (w *messagingWorld) aConversationBetween(a, b string) error {
	conv, err := w.store.CreateConversation(context.Background(), []string{a, b}, domain.ConversationTypeDirect, "")
	if err != nil {
		return err
	}
	w.conversationID = conv.ID
	return nil
}

func (w *messagingWorld) sendsToTheConversation(sender, content string) error {
	msg, err := w.store.CreateMessage(context.Background(), w.conversationID, sender, content, "")
	w.lastSendErr = err
	if err != nil {
		return nil
	}
	w.messagesByText[msg.Content] = msg.ID
	w.sent++
	return nil
}

func (w *messagingWorld) hasUnreadMessages(member string, count int) error {
	conv, err := w.store.GetConversation(context.Background(), w.conversationID)
	if err != nil {
		return err
	}
	if conv.UnreadCounts[member] != count {
		return fmt.Errorf("expected %d unread for %s, got %d", count, member, conv.UnreadCounts[member])
	}
	return nil
}

func (w *messagingWorld) viewsTheConversation(member string) error {
	_, err := w.store.GetMessages(context.Background(), w.conversationID, member)
	return err
}

func (w *messagingWorld) theMessageIsReadBy(content, member string) error {
	msgs, err := w.store.GetMessages(context.Background(), w.conversationID, member)
	if err != nil {
		return err
	}
	for _, msg := range msgs {
		if msg.Content != content {
			continue
		}
		for _, reader := range msg.ReadBy {
			if reader == member {
				return nil
			}
		}
		return fmt.Errorf("message %q is not read by %s", content, member)
	}
	return fmt.Errorf("message %q not found", content)
}

func (w *messagingWorld) repliesToTheMessage(sender, content, target string) error {
	targetID, ok := w.messagesByText[target]
	if !ok {
		return fmt.Errorf("no message with text %q", target)
	}
	msg, err := w.store.CreateMessage(context.Background(), w.conversationID, sender, content, targetID)
	if err != nil {
		return err
	}
	if msg.ReplyToID != targetID {
		return fmt.Errorf("reply does not reference %q", target)
	}
	w.messagesByText[msg.Content] = msg.ID
	w.sent++
	return nil
}

func (w *messagingWorld) theConversationHasMessages(count int) error {
	// viewing would mark everything read, so count what the scenario sent
	if w.sent != count {
		return fmt.Errorf("expected %d messages, got %d", count, w.sent)
	}
	return nil
}

func (w *messagingWorld) theSendIsRejected() error {
	if w.lastSendErr == nil {
		return fmt.Errorf("expected the send to fail")
	}
	return nil
}

func (w *messagingWorld) startsTyping(member string) error {
	return w.store.SetTypingStatus(context.Background(), w.conversationID, member, true)
}

func (w *messagingWorld) stopsTyping(member string) error {
	return w.store.SetTypingStatus(context.Background(), w.conversationID, member, false)
}

func (w *messagingWorld) seesTyping(viewer, typer string) error {
	typing, err := w.store.GetTypingUsers(context.Background(), w.conversationID)
	if err != nil {
		return err
	}
	for _, member := range typing {
		if member == typer {
			return nil
		}
	}
	return fmt.Errorf("%s does not see %s typing", viewer, typer)
}

func (w *messagingWorld) seesNobodyTyping(viewer string) error {
	typing, err := w.store.GetTypingUsers(context.Background(), w.conversationID)
	if err != nil {
		return err
	}
	if len(typing) != 0 {
		return fmt.Errorf("%s still sees %v typing", viewer, typing)
	}
	return nil
}
