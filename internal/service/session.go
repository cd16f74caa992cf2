package service

import (
	"context"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/repo"
)

type SessionService struct {
	sessionRepo repo.Session
}

func NewSessionService(sr repo.Session) *SessionService {
	return &SessionService{sessionRepo: sr}
}

func (s *SessionService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx)
	if err != nil {
		return []domain.Session{}, err
	}
	return sessions, nil
}

func (s *SessionService) GetSession(ctx context.Context, id string) (domain.Session, error) {
	return s.sessionRepo.GetSession(ctx, id)
}

func (s *SessionService) RenameSession(ctx context.Context, id, title string) error {
	return s.sessionRepo.RenameSession(ctx, id, title)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.sessionRepo.DeleteSession(ctx, id)
}
