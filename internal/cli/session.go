package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/existflow/tutordesk/internal/config"
	"github.com/existflow/tutordesk/internal/model"
)

// session is the state one invocation works on. Data lives only for the
// lifetime of the process.
type session struct {
	cfg  *config.Config
	user *model.User
}

// sessionNote is appended to the help of commands that change data
const sessionNote = "\n\nChanges last only for this invocation. Each run starts a fresh session."

type sessionKey struct{}

func withSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// sessionFrom returns the session the root command attached to cmd
func sessionFrom(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("no session: command context not set")
	}
	s, ok := ctx.Value(sessionKey{}).(*session)
	if !ok || s == nil {
		return nil, errors.New("no session: command context not set")
	}
	return s, nil
}
