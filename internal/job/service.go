package job

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/JobEconomy_Go/internal/catalog"
	"github.com/osse101/JobEconomy_Go/internal/concurrency"
	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

// Catalog is the part of the job catalog the service reads
type Catalog interface {
	JobExists(name string) bool
	Job(name string) (*domain.JobDefinition, bool)
	JobNames() []string
	SalaryDelay() int
	Reload(ctx context.Context) error
}

// Service defines the player job business logic
type Service interface {
	// Assignment
	GetJob(ctx context.Context, playerID string) (string, error)
	SetJob(ctx context.Context, playerID, jobName string) (string, error)
	EnsurePlayer(ctx context.Context, playerID string) error

	// Progress
	GetExp(ctx context.Context, playerID, job string) (int, error)
	GetLevel(ctx context.Context, playerID, job string) (int, error)
	AddExp(ctx context.Context, playerID string, amount int) error
	CheckForLevel(ctx context.Context, playerID string) (domain.LevelUpResult, error)
	JobInfo(ctx context.Context, playerID string) (*domain.JobInfo, error)

	// Preferences
	NotificationsEnabled(ctx context.Context, playerID string) (bool, error)
	SetNotifications(ctx context.Context, playerID string, enabled bool) error

	// Catalog
	JobExists(name string) bool
	JobList() []string
	ReloadConfig(ctx context.Context) error
}

// Config toggles optional behavior
type Config struct {
	// PermissionsEnabled gates SetJob on the main.job.<name> permission
	PermissionsEnabled bool
}

type service struct {
	repo      repository.PlayerJobs
	catalog   Catalog
	locks     *concurrency.LockManager
	messenger domain.Messenger
	authz     domain.Authorizer
	publisher event.Publisher
	config    Config
}

// NewService creates a new job service
func NewService(
	repo repository.PlayerJobs,
	cat Catalog,
	locks *concurrency.LockManager,
	messenger domain.Messenger,
	authz domain.Authorizer,
	publisher event.Publisher,
	cfg Config,
) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:      repo,
		catalog:   cat,
		locks:     locks,
		messenger: messenger,
		authz:     authz,
		publisher: publisher,
		config:    cfg,
	}
}

// GetJob returns the player's current job, "Unemployed" for unknown players
func (s *service) GetJob(ctx context.Context, playerID string) (string, error) {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return "", err
	}
	rec, err := s.load(ctx, playerID)
	if err != nil {
		return "", err
	}
	return rec.CurrentJob, nil
}

// SetJob switches the player to jobName and returns the canonical name.
// Stats for the new job are only created when absent, so earlier progress
// in that job survives a round trip through other jobs.
func (s *service) SetJob(ctx context.Context, playerID, jobName string) (string, error) {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return "", err
	}
	log := logger.FromContext(ctx)

	def, ok := s.catalog.Job(jobName)
	if !ok {
		log.Info(LogMsgUnknownJobRequested, "player_id", playerID, "job", jobName)
		s.send(ctx, playerID, domain.MsgJobDoesNotExist)
		return "", fmt.Errorf("%w: %s", domain.ErrJobNotFound, jobName)
	}
	name := def.Name

	if s.config.PermissionsEnabled && s.authz != nil {
		node := domain.PermissionJobPrefix + strings.ToLower(name)
		allowed, err := s.authz.HasPermission(ctx, playerID, node)
		if err != nil {
			return "", fmt.Errorf("check permission %s: %w", node, err)
		}
		if !allowed {
			log.Info(LogMsgPermissionDenied, "player_id", playerID, "job", name, "permission", node)
			s.send(ctx, playerID, domain.MsgJobPermissionDenied)
			return "", fmt.Errorf("%w: %s", domain.ErrPermissionDenied, node)
		}
	}

	var (
		previous string
		saveErr  error
	)
	err = s.locks.WithLock(playerID, func() error {
		rec, err := s.load(ctx, playerID)
		if err != nil {
			return err
		}
		previous = rec.CurrentJob
		rec.CurrentJob = name
		rec.EnsureStats(name)
		saveErr = s.save(ctx, rec)
		return nil
	})
	if err != nil {
		return "", err
	}

	log.Info(LogMsgJobChanged, "player_id", playerID, "previous_job", previous, "job", name)
	s.publish(ctx, event.NewJobChangedEvent(playerID, previous, name))
	s.send(ctx, playerID, fmt.Sprintf(domain.MsgJobChangedFormat, name))
	return name, saveErr
}

// EnsurePlayer persists a default record for a player seen for the first time
func (s *service) EnsurePlayer(ctx context.Context, playerID string) error {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return err
	}
	return s.locks.WithLock(playerID, func() error {
		_, err := s.repo.GetRecord(ctx, playerID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrRecordNotFound) {
			return err
		}
		rec := domain.NewPlayerJobRecord(playerID)
		rec.EnsureStats(rec.CurrentJob)
		return s.save(ctx, rec)
	})
}

// GetExp returns the exp held in job, 0 when the player never had it
func (s *service) GetExp(ctx context.Context, playerID, job string) (int, error) {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return 0, err
	}
	rec, err := s.load(ctx, playerID)
	if err != nil {
		return 0, err
	}
	if st, ok := rec.Stats[s.canonical(job)]; ok {
		return st.Exp, nil
	}
	return 0, nil
}

// GetLevel returns the level in job, 1 when the player never had it
func (s *service) GetLevel(ctx context.Context, playerID, job string) (int, error) {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return 0, err
	}
	rec, err := s.load(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return rec.StatsFor(s.canonical(job)).Level, nil
}

// AddExp adds amount to the current job. Exp is not capped here; only
// CheckForLevel converts it into levels.
func (s *service) AddExp(ctx context.Context, playerID string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: exp %d", domain.ErrInvalidAmount, amount)
	}
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return err
	}

	var (
		job     string
		total   int
		notify  bool
		saveErr error
	)
	err = s.locks.WithLock(playerID, func() error {
		rec, err := s.load(ctx, playerID)
		if err != nil {
			return err
		}
		job = rec.CurrentJob
		st := rec.StatsFor(job)
		st.Exp += amount
		rec.Stats[job] = st
		total = st.Exp
		notify = rec.NotificationsEnabled
		saveErr = s.save(ctx, rec)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, event.NewExpGainedEvent(playerID, job, amount, total))
	if notify {
		s.send(ctx, playerID, fmt.Sprintf(domain.MsgExpGainedFormat, amount, job))
	}
	return saveErr
}

// CheckForLevel grants at most one level per call. The level-up message is
// always sent, regardless of the notification preference.
func (s *service) CheckForLevel(ctx context.Context, playerID string) (domain.LevelUpResult, error) {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return domain.LevelUpResult{}, err
	}
	var (
		result  domain.LevelUpResult
		saveErr error
	)
	err = s.locks.WithLock(playerID, func() error {
		rec, err := s.load(ctx, playerID)
		if err != nil {
			return err
		}
		job := rec.CurrentJob
		next, leveled := ApplyLevelUp(rec.StatsFor(job))
		if !leveled {
			return nil
		}
		rec.Stats[job] = next
		result = domain.LevelUpResult{LeveledUp: true, Job: job, NewLevel: next.Level}
		saveErr = s.save(ctx, rec)
		return nil
	})
	if err != nil || !result.LeveledUp {
		return result, err
	}

	logger.FromContext(ctx).Info(LogMsgLevelUp, "player_id", playerID, "job", result.Job, "level", result.NewLevel)
	s.publish(ctx, event.NewJobLevelUpEvent(playerID, result.Job, result.NewLevel-1, result.NewLevel))
	s.send(ctx, playerID, fmt.Sprintf(domain.MsgLevelUpFormat, result.NewLevel, result.Job))
	return result, saveErr
}

// JobInfo summarizes the player's current job
func (s *service) JobInfo(ctx context.Context, playerID string) (*domain.JobInfo, error) {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return nil, err
	}
	rec, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	st := rec.StatsFor(rec.CurrentJob)
	info := &domain.JobInfo{
		PlayerID:             playerID,
		Job:                  rec.CurrentJob,
		Level:                st.Level,
		Exp:                  st.Exp,
		ExpToNextLevel:       max(ExpToLevel(st.Level)-st.Exp, 0),
		NotificationsEnabled: rec.NotificationsEnabled,
	}
	if def, ok := s.catalog.Job(rec.CurrentJob); ok {
		info.Salary = def.Salary
		info.Rewards = def.Rewards
	}
	return info, nil
}

// NotificationsEnabled reports the player's message preference
func (s *service) NotificationsEnabled(ctx context.Context, playerID string) (bool, error) {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return false, err
	}
	rec, err := s.load(ctx, playerID)
	if err != nil {
		return false, err
	}
	return rec.NotificationsEnabled, nil
}

// SetNotifications stores the player's message preference
func (s *service) SetNotifications(ctx context.Context, playerID string, enabled bool) error {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return err
	}
	return s.locks.WithLock(playerID, func() error {
		rec, err := s.load(ctx, playerID)
		if err != nil {
			return err
		}
		rec.NotificationsEnabled = enabled
		return s.save(ctx, rec)
	})
}

// JobExists reports whether name (any case) is configured
func (s *service) JobExists(name string) bool {
	return s.catalog.JobExists(name)
}

// JobList returns the configured display list
func (s *service) JobList() []string {
	return s.catalog.JobNames()
}

// ReloadConfig re-reads the catalog. On failure the previous catalog stays
// active and the error is returned.
func (s *service) ReloadConfig(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := s.catalog.Reload(ctx); err != nil {
		log.Warn(LogMsgCatalogReloadFailed, "error", err)
		s.publish(ctx, event.NewCatalogReloadFailedEvent(err))
		return err
	}
	jobs := s.catalog.JobNames()
	log.Info(LogMsgCatalogReloaded, "jobs", jobs)
	s.publish(ctx, event.NewCatalogReloadedEvent(jobs, s.catalog.SalaryDelay()))
	return nil
}

// load returns the stored record or a fresh default one
func (s *service) load(ctx context.Context, playerID string) (*domain.PlayerJobRecord, error) {
	rec, err := s.repo.GetRecord(ctx, playerID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.NewPlayerJobRecord(playerID), nil
	}
	if err != nil {
		return nil, err
	}
	if rec.CurrentJob == "" {
		rec.CurrentJob = domain.UnemployedJob
	}
	if rec.Stats == nil {
		rec.Stats = make(map[string]domain.JobStats)
	}
	return rec, nil
}

// save persists rec. Failures are logged and returned as ErrConfigIO; the
// record store keeps the in-memory change either way.
func (s *service) save(ctx context.Context, rec *domain.PlayerJobRecord) error {
	err := s.repo.SaveRecord(ctx, rec)
	if err == nil {
		return nil
	}
	logger.FromContext(ctx).Error(LogMsgPersistFailed, "player_id", rec.PlayerID, "error", err)
	if errors.Is(err, domain.ErrConfigIO) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrConfigIO, err)
}

func (s *service) canonical(job string) string {
	if def, ok := s.catalog.Job(job); ok {
		return def.Name
	}
	return catalog.NormalizeJobName(job)
}

func (s *service) send(ctx context.Context, playerID, message string) {
	if s.messenger == nil {
		return
	}
	if err := s.messenger.SendMessage(ctx, playerID, message); err != nil {
		logger.FromContext(ctx).Warn(LogMsgMessageFailed, "player_id", playerID, "error", err)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
