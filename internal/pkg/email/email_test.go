package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlopy/urlopy-backend-go/internal/config"
	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

type sentMail struct {
	addr string
	to   []string
	msg  string
}

func newTestNotifier(t *testing.T, host string, failures int) (*LeaveNotifier, *[]sentMail, *int) {
	t.Helper()
	n, err := NewLeaveNotifier(config.SMTPConfig{Host: host, Port: 25, From: "urlopy@example.com", FromName: "Urlopy"})
	require.NoError(t, err)
	n.backoff = time.Millisecond

	var (
		sent     []sentMail
		attempts int
	)
	n.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		attempts++
		if attempts <= failures {
			return errors.New("connection refused")
		}
		sent = append(sent, sentMail{addr: addr, to: to, msg: string(msg)})
		return nil
	}
	return n, &sent, &attempts
}

var (
	notifyAdmins = []user.User{
		{ID: 1, Name: "Szefowa", Email: "szefowa@example.com", Role: user.RoleAdmin},
		{ID: 2, Name: "Kadry", Email: "kadry@example.com", Role: user.RoleAdmin},
	}
	notifyEmployee = user.User{ID: 10, Name: "Jan", Email: "jan@example.com"}
)

func notifyLeave() leave.Leave {
	comment := "wyjazd"
	return leave.Leave{
		ID:       5,
		UserID:   10,
		DateFrom: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		Comment:  &comment,
	}
}

func TestNotifyLeaveSubmitted_SendsToEveryAdmin(t *testing.T) {
	n, sent, _ := newTestNotifier(t, "smtp.example.com", 0)

	require.NoError(t, n.NotifyLeaveSubmitted(context.Background(), notifyAdmins, notifyEmployee, notifyLeave()))

	require.Len(t, *sent, 2)
	first := (*sent)[0]
	assert.Equal(t, "smtp.example.com:25", first.addr)
	assert.Equal(t, []string{"szefowa@example.com"}, first.to)
	assert.Contains(t, first.msg, "Subject: Nowy wniosek urlopowy: Jan (2024-07-01 - 2024-07-05)")
	assert.Contains(t, first.msg, "Szefowa")
	assert.Contains(t, first.msg, "wyjazd")
	assert.True(t, strings.Contains(first.msg, "<td>5</td>"))
}

func TestNotifyLeaveSubmitted_Retries(t *testing.T) {
	n, sent, attempts := newTestNotifier(t, "smtp.example.com", 2)

	err := n.NotifyLeaveSubmitted(context.Background(), notifyAdmins[:1], notifyEmployee, notifyLeave())

	require.NoError(t, err)
	assert.Equal(t, 3, *attempts)
	assert.Len(t, *sent, 1)
}

func TestNotifyLeaveSubmitted_GivesUp(t *testing.T) {
	n, sent, attempts := newTestNotifier(t, "smtp.example.com", 100)

	err := n.NotifyLeaveSubmitted(context.Background(), notifyAdmins[:1], notifyEmployee, notifyLeave())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, maxRetries, *attempts)
	assert.Empty(t, *sent)
}

func TestNotifyLeaveSubmitted_NoHostSkips(t *testing.T) {
	n, sent, attempts := newTestNotifier(t, "", 0)

	require.NoError(t, n.NotifyLeaveSubmitted(context.Background(), notifyAdmins, notifyEmployee, notifyLeave()))

	assert.Zero(t, *attempts)
	assert.Empty(t, *sent)
}
