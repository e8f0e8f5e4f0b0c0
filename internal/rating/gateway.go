package rating

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/session"
)

// FailureKind classifies a rating mutation failure
type FailureKind int

const (
	// FailureTransport is a connectivity-level failure with no response
	FailureTransport FailureKind = iota
	// FailureUnauthenticated is a missing or expired session credential
	FailureUnauthenticated
	// FailureRejected is an explicit refusal by the remote service
	FailureRejected
)

// String returns a human-readable failure kind
func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport failure"
	case FailureUnauthenticated:
		return "unauthenticated"
	case FailureRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MutationError is the normalized failure result of a rating mutation
type MutationError struct {
	Kind  FailureKind
	Cause error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("rating mutation failed (%s): %v", e.Kind, e.Cause)
}

func (e *MutationError) Unwrap() error {
	return e.Cause
}

// Remote is the slice of the movie service the gateway needs
type Remote interface {
	RateMovie(ctx context.Context, movieID int, sessionID string, serviceValue float64) error
	DeleteRating(ctx context.Context, movieID int, sessionID string) error
}

// Gateway is the single choke point for rate/unrate actions. Every
// invocation performs exactly one outbound call; failures are normalized,
// never retried here.
type Gateway struct {
	remote  Remote
	session *session.Session
	logger  *slog.Logger
}

// NewGateway creates a rating mutation gateway
func NewGateway(remote Remote, sess *session.Session, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{remote: remote, session: sess, logger: logger}
}

// Submit commits a rating value for a movie. The value is converted from
// the user-facing 1-5 scale to the service's doubled scale before
// transmission. The caller updates its own local view on success.
func (g *Gateway) Submit(ctx context.Context, movieID int, value domain.Rating) error {
	sessionID := g.session.ID()
	if sessionID == "" {
		return &MutationError{Kind: FailureUnauthenticated, Cause: domain.ErrNotSignedIn}
	}

	if err := g.remote.RateMovie(ctx, movieID, sessionID, value.ToServiceScale()); err != nil {
		g.logger.Error("rating submit failed", "movieID", movieID, "value", value.Value, "error", err)
		return classify(err)
	}

	g.logger.Info("rating submitted", "movieID", movieID, "value", value.Value)
	return nil
}

// Clear removes the user's rating for a movie. The caller updates its own
// local view (and ratings-list membership) on success.
func (g *Gateway) Clear(ctx context.Context, movieID int) error {
	sessionID := g.session.ID()
	if sessionID == "" {
		return &MutationError{Kind: FailureUnauthenticated, Cause: domain.ErrNotSignedIn}
	}

	if err := g.remote.DeleteRating(ctx, movieID, sessionID); err != nil {
		g.logger.Error("rating clear failed", "movieID", movieID, "error", err)
		return classify(err)
	}

	g.logger.Info("rating cleared", "movieID", movieID)
	return nil
}

// classify maps remote errors onto the mutation failure taxonomy
func classify(err error) *MutationError {
	switch {
	case errors.Is(err, domain.ErrAuthFailed), errors.Is(err, domain.ErrNotSignedIn):
		return &MutationError{Kind: FailureUnauthenticated, Cause: err}
	case errors.Is(err, domain.ErrRejected), errors.Is(err, domain.ErrMovieNotFound):
		return &MutationError{Kind: FailureRejected, Cause: err}
	default:
		return &MutationError{Kind: FailureTransport, Cause: err}
	}
}
