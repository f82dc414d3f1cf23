package services

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-painel-pr/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-pr/internal/observability"
)

// SessionService guarda um dashboard.Controller por sessão de navegador
type SessionService struct {
	cache   *LRUCache
	ttl     time.Duration
	factory func() *dashboard.Controller
	metrics *observability.Metrics
	logger  *zap.Logger

	// serializa o "get or create"
	mu sync.Mutex
}

// NewSessionService cria o serviço de sessões com capacidade e TTL
func NewSessionService(capacity int, ttl time.Duration, clock clockwork.Clock, factory func() *dashboard.Controller, metrics *observability.Metrics, logger *zap.Logger) *SessionService {
	s := &SessionService{
		cache:   NewLRUCache(capacity, clock),
		ttl:     ttl,
		factory: factory,
		metrics: metrics,
		logger:  logger,
	}
	s.cache.OnEvict(func(key string, _ interface{}) {
		s.metrics.SessionsExpired.Inc()
		s.logger.Debug("sessão expirada", zap.String("session_id", key))
	})
	return s
}

// Controller devolve o controller da sessão, criando um novo estado se
// a sessão não existe ou expirou. Cada acesso renova o TTL.
func (s *SessionService) Controller(sessionID string) *dashboard.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value := s.cache.Get(sessionID); value != nil {
		s.cache.Touch(sessionID, s.ttl)
		return value.(*dashboard.Controller)
	}

	ctrl := s.factory()
	s.cache.Set(sessionID, ctrl, s.ttl)
	s.metrics.ActiveSessions.Set(float64(s.cache.Size()))
	s.logger.Debug("nova sessão", zap.String("session_id", sessionID))
	return ctrl
}

// Reset descarta o estado da sessão; o próximo acesso começa do estado inicial
func (s *SessionService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Delete(sessionID)
	s.metrics.ActiveSessions.Set(float64(s.cache.Size()))
	s.logger.Debug("sessão reiniciada", zap.String("session_id", sessionID))
}

// Count retorna quantas sessões estão em memória
func (s *SessionService) Count() int {
	return s.cache.Size()
}

// StartCleanup remove sessões expiradas periodicamente até o ctx terminar
func (s *SessionService) StartCleanup(ctx context.Context, interval time.Duration) {
	s.cache.StartCleanupRoutine(ctx, interval, func(removed int) {
		s.metrics.ActiveSessions.Set(float64(s.cache.Size()))
		s.logger.Info("limpeza de sessões", zap.Int("removed", removed))
	})
}
