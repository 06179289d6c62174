package contact

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func newTestMailer(d dialer) *Mailer {
	m := NewMailer("smtp.example.com", 587, "site@example.com", "secret", "owner@example.com", zap.NewNop())
	m.dialer = d
	return m
}

func TestSendComposesMessage(t *testing.T) {
	d := &fakeDialer{}
	m := newTestMailer(d)

	err := m.Send(Message{Name: "Ada", Email: "ada@example.com", Message: "Hello there"})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("Reply-To"))
	assert.Equal(t, []string{"Portfolio Contact: Ada"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hello there")
}

func TestSendValidates(t *testing.T) {
	d := &fakeDialer{}
	m := newTestMailer(d)

	tests := []Message{
		{Name: "", Email: "a@b.c", Message: "hi"},
		{Name: "A", Email: "not-an-email", Message: "hi"},
		{Name: "A", Email: "a@b.c", Message: "  "},
	}
	for _, msg := range tests {
		assert.ErrorIs(t, m.Send(msg), ErrInvalidMessage)
	}
	assert.Empty(t, d.sent)
}

func TestSendWithoutCredentials(t *testing.T) {
	m := NewMailer("smtp.example.com", 587, "", "", "", zap.NewNop())
	err := m.Send(Message{Name: "A", Email: "a@b.c", Message: "hi"})
	assert.ErrorIs(t, err, ErrMailerNotConfigured)
}

func TestSendWrapsDialError(t *testing.T) {
	boom := errors.New("connection refused")
	m := newTestMailer(&fakeDialer{err: boom})
	err := m.Send(Message{Name: "A", Email: "a@b.c", Message: "hi"})
	assert.ErrorIs(t, err, boom)
}
