package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meal_poll_bot/configs"
	"meal_poll_bot/internal/chat"
	"meal_poll_bot/internal/db/models"
	"meal_poll_bot/internal/db/repositories"
	"meal_poll_bot/internal/decision"
	"meal_poll_bot/internal/options"
	"meal_poll_bot/internal/services"

	"go.uber.org/zap"
)

type Outcome string

const (
	OutcomeOpened          Outcome = "opened"
	OutcomeAborted         Outcome = "aborted"
	OutcomeNoQuorum        Outcome = "no_quorum"
	OutcomeNoEligiblePayer Outcome = "no_eligible_payer"
	OutcomeAnnounced       Outcome = "announced"
	OutcomeReminded        Outcome = "reminded"
	OutcomeFailed          Outcome = "failed"
)

type Result struct {
	Outcome Outcome
	Poll    *models.Poll
	Choice  string
	Payer   string
}

type Config struct {
	ChannelID       string
	OptionsFile     string
	Location        *time.Location
	StalenessWindow time.Duration
	OperatorMention string
	RemindPolicy    string
}

// NewConfig builds the workflow settings from the application config.
func NewConfig(config configs.App) (Config, error) {
	location, err := config.Location()
	if err != nil {
		return Config{}, err
	}

	return Config{
		ChannelID:       config.ChannelID,
		OptionsFile:     config.OptionsFile,
		Location:        location,
		StalenessWindow: config.StalenessWindow,
		OperatorMention: config.OperatorMention,
		RemindPolicy:    config.RemindUndecidedPolicy,
	}, nil
}

type PollWorkflow interface {
	// Open posts today's poll and seeds it with one reaction per option.
	Open(ctx context.Context) (Result, error)
	// Tally closes the latest poll and announces the winner and the payer.
	Tally(ctx context.Context) (Result, error)
	// Remind announces the decision of the latest poll again.
	Remind(ctx context.Context) (Result, error)
}

type pollWorkflow struct {
	config   Config
	chat     chat.Client
	polls    repositories.PollRepository
	mappings repositories.IdentityMappingRepository
	ledger   services.LedgerService
	chooser  decision.Chooser
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewPollWorkflow(
	config Config,
	chatClient chat.Client,
	polls repositories.PollRepository,
	mappings repositories.IdentityMappingRepository,
	ledger services.LedgerService,
	chooser decision.Chooser,
	logger *zap.SugaredLogger,
) PollWorkflow {
	return &pollWorkflow{
		config:   config,
		chat:     chatClient,
		polls:    polls,
		mappings: mappings,
		ledger:   ledger,
		chooser:  chooser,
		logger:   logger,
		now:      time.Now,
	}
}

func (w *pollWorkflow) Open(ctx context.Context) (Result, error) {
	now := w.now()

	table, err := options.Load(w.config.OptionsFile, now.In(w.config.Location))
	if err != nil {
		return Result{}, err
	}

	date := models.Day(now, w.config.Location)

	_, err = w.polls.GetOne(ctx, w.config.ChannelID, date)
	if err == nil {
		return Result{}, fmt.Errorf("%w: %s", repositories.ErrDuplicatePoll, date.Format(models.DateLayout))
	}
	if !errors.Is(err, repositories.ErrPollNotFound) {
		return Result{}, err
	}

	message, err := w.chat.PostMessage(ctx, w.config.ChannelID, pollMessage(table))
	if err != nil {
		return Result{}, err
	}

	postedAt := message.PostedAt
	if postedAt.IsZero() {
		postedAt = now
	}

	poll, err := w.polls.Create(ctx, &models.Poll{
		ChannelID: w.config.ChannelID,
		Date:      date,
		Timestamp: message.Timestamp,
		PostedAt:  postedAt,
	})
	if err != nil {
		return Result{}, err
	}

	w.logger.Infow("poll opened", "poll_id", poll.ID, "channel", poll.ChannelID, "date", date.Format(models.DateLayout))

	for _, option := range table.All() {
		if err := w.chat.AddReaction(ctx, poll.ChannelID, poll.Timestamp, option.Label); err != nil {
			return Result{Outcome: OutcomeOpened, Poll: poll}, err
		}
	}

	return Result{Outcome: OutcomeOpened, Poll: poll}, nil
}

func (w *pollWorkflow) Tally(ctx context.Context) (Result, error) {
	now := w.now()

	table, err := options.Load(w.config.OptionsFile, now.In(w.config.Location))
	if err != nil {
		return Result{}, err
	}

	poll, err := w.latest(ctx, now)
	if err != nil {
		return Result{}, err
	}

	reactions, err := w.chat.GetReactions(ctx, poll.ChannelID, poll.Timestamp)
	if err != nil {
		return Result{Poll: poll}, err
	}

	if decision.HasAbort(reactions, table) {
		w.logger.Infow("poll aborted", "poll_id", poll.ID)
		return Result{Outcome: OutcomeAborted, Poll: poll}, nil
	}

	tally := decision.Aggregate(reactions, table)

	choice, err := decision.SelectWinner(tally.Votes, poll.Choice, w.chooser)
	if errors.Is(err, decision.ErrNoQuorum) {
		return w.apologize(ctx, poll, OutcomeNoQuorum)
	}
	if err != nil {
		return Result{Poll: poll}, err
	}

	return w.announce(ctx, poll, table, choice, tally.Voters, false)
}

func (w *pollWorkflow) Remind(ctx context.Context) (Result, error) {
	now := w.now()

	table, err := options.Load(w.config.OptionsFile, now.In(w.config.Location))
	if err != nil {
		return Result{}, err
	}

	poll, err := w.latest(ctx, now)
	if err != nil {
		return Result{}, err
	}

	reactions, err := w.chat.GetReactions(ctx, poll.ChannelID, poll.Timestamp)
	if err != nil {
		return Result{Poll: poll}, err
	}

	if decision.HasAbort(reactions, table) {
		w.logger.Infow("poll aborted, skipping reminder", "poll_id", poll.ID)
		return Result{Outcome: OutcomeAborted, Poll: poll}, nil
	}

	tally := decision.Aggregate(reactions, table)

	if poll.State() == models.PollStateOpen {
		if w.config.RemindPolicy != configs.RemindPolicyRedecide {
			return Result{Poll: poll}, ErrNotDecided
		}

		w.logger.Infow("poll undecided at reminder time, deciding now", "poll_id", poll.ID)

		choice, err := decision.SelectWinner(tally.Votes, "", w.chooser)
		if errors.Is(err, decision.ErrNoQuorum) {
			return w.apologize(ctx, poll, OutcomeNoQuorum)
		}
		if err != nil {
			return Result{Poll: poll}, err
		}

		return w.announce(ctx, poll, table, choice, tally.Voters, true)
	}

	attendees, err := w.attendees(ctx, poll, table)
	if err != nil {
		return Result{Poll: poll}, err
	}
	if len(attendees) == 0 {
		attendees = tally.Voters
	}

	return w.announce(ctx, poll, table, poll.Choice, attendees, true)
}

func (w *pollWorkflow) latest(ctx context.Context, now time.Time) (*models.Poll, error) {
	poll, err := w.polls.GetLatest(ctx, w.config.ChannelID)
	if err != nil {
		return nil, err
	}

	if poll.IsStale(now, w.config.StalenessWindow) {
		return nil, fmt.Errorf("%w: posted at %s", ErrStalePoll, poll.PostedAt.Format(time.RFC3339))
	}

	return poll, nil
}

func (w *pollWorkflow) attendees(ctx context.Context, poll *models.Poll, table options.Table) (decision.VoterSet, error) {
	if poll.SecondaryTimestamp == "" {
		return nil, nil
	}

	reactions, err := w.chat.GetReactions(ctx, poll.ChannelID, poll.SecondaryTimestamp)
	if err != nil {
		return nil, err
	}

	return decision.Attendees(reactions, table), nil
}

// announce posts the decision and moves the poll to Decided, or to Reminded
// when reminder is set.
func (w *pollWorkflow) announce(
	ctx context.Context,
	poll *models.Poll,
	table options.Table,
	choice string,
	voters decision.VoterSet,
	reminder bool,
) (Result, error) {
	option, ok := table.Lookup(choice)
	if !ok {
		return w.fail(ctx, poll, fmt.Errorf("%w: %q", ErrUnknownOption, choice))
	}

	payer, err := w.selectPayer(ctx, voters)
	if errors.Is(err, decision.ErrNoEligiblePayer) {
		return w.apologize(ctx, poll, OutcomeNoEligiblePayer)
	}
	if errors.Is(err, services.ErrMalformedResponse) {
		return w.fail(ctx, poll, err)
	}
	if err != nil {
		return Result{Poll: poll}, err
	}

	message, err := w.chat.PostMessage(ctx, poll.ChannelID, announcementMessage(option, payer.Name, reminder))
	if err != nil {
		return Result{Poll: poll}, err
	}

	if poll.State() == models.PollStateOpen {
		decided, err := w.polls.SetChoice(ctx, poll.ID, choice, message.Timestamp)
		if err != nil {
			return Result{Poll: poll}, err
		}
		if decided.Choice != choice {
			w.logger.Warnw("poll was already decided", "poll_id", poll.ID, "announced", choice, "stored", decided.Choice)
		}
		poll = decided
	}

	result := Result{Outcome: OutcomeAnnounced, Choice: poll.Choice, Payer: payer.Name}

	if reminder {
		reminded, err := w.polls.MarkReminded(ctx, poll.ID, w.now())
		if err != nil {
			return Result{Poll: poll}, err
		}
		poll = reminded
		result.Outcome = OutcomeReminded
	}

	result.Poll = poll

	w.logger.Infow("poll announced", "poll_id", poll.ID, "choice", result.Choice, "payer", payer.Name, "reminder", reminder)
	return result, nil
}

func (w *pollWorkflow) selectPayer(ctx context.Context, voters decision.VoterSet) (decision.LedgerMember, error) {
	session, err := w.ledger.Login(ctx)
	if err != nil {
		return decision.LedgerMember{}, err
	}

	members, err := w.ledger.GetBalances(ctx, session)
	if err != nil {
		return decision.LedgerMember{}, err
	}

	mappings, err := w.mappings.GetMany(ctx)
	if err != nil {
		return decision.LedgerMember{}, err
	}

	identities := make(decision.IdentityMap, len(mappings))
	for _, mapping := range mappings {
		identities[mapping.LedgerMemberID] = mapping.ChatUserID
	}

	return decision.SelectPayer(voters, members, identities, w.chooser, w.logger)
}

func (w *pollWorkflow) apologize(ctx context.Context, poll *models.Poll, outcome Outcome) (Result, error) {
	w.logger.Infow("no decision possible", "poll_id", poll.ID, "outcome", outcome)

	if _, err := w.chat.PostMessage(ctx, poll.ChannelID, apologyText); err != nil {
		return Result{Poll: poll}, err
	}

	return Result{Outcome: outcome, Poll: poll}, nil
}

func (w *pollWorkflow) fail(ctx context.Context, poll *models.Poll, cause error) (Result, error) {
	w.logger.Errorw("poll failed, falling back to manual handling", "poll_id", poll.ID, "error", cause)

	if _, err := w.chat.PostMessage(ctx, poll.ChannelID, fallbackMessage(w.config.OperatorMention)); err != nil {
		w.logger.Errorw("failed to post fallback message", "poll_id", poll.ID, "error", err)
	}

	return Result{Outcome: OutcomeFailed, Poll: poll}, cause
}
