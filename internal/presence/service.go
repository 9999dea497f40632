package presence

import (
	"context"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// PlayerRegistry creates the persisted record for a first-time player
type PlayerRegistry interface {
	EnsurePlayer(ctx context.Context, playerID string) error
}

// Service handles host session notifications
type Service struct {
	store     Store
	players   PlayerRegistry
	publisher event.Publisher
}

// NewService creates a new presence service
func NewService(store Store, players PlayerRegistry, publisher event.Publisher) *Service {
	return &Service{store: store, players: players, publisher: publisher}
}

// Connect records the session and makes sure the player has a job record
func (s *Service) Connect(ctx context.Context, session domain.PlayerSession) error {
	id, err := domain.NormalizePlayerID(session.PlayerID)
	if err != nil {
		return err
	}
	session.PlayerID = id
	log := logger.FromContext(ctx)

	if err := s.store.Connect(ctx, session); err != nil {
		return err
	}
	if s.players != nil {
		if err := s.players.EnsurePlayer(ctx, session.PlayerID); err != nil {
			log.Warn(LogMsgEnsurePlayerFailed, "player_id", session.PlayerID, "error", err)
		}
	}

	log.Info(LogMsgPlayerConnected, "player_id", session.PlayerID, "name", session.Name, "permissions", len(session.Permissions))
	s.publish(ctx, event.NewPlayerConnectedEvent(session.PlayerID, session.Name))
	return nil
}

// Disconnect removes the session
func (s *Service) Disconnect(ctx context.Context, playerID string) error {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return err
	}
	if err := s.store.Disconnect(ctx, playerID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPlayerDisconnected, "player_id", playerID)
	s.publish(ctx, event.NewPlayerDisconnectedEvent(playerID))
	return nil
}

// OnlinePlayers lists connected players
func (s *Service) OnlinePlayers(ctx context.Context) ([]domain.PlayerSession, error) {
	return s.store.OnlinePlayers(ctx)
}

func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
