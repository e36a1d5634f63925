package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"t2c/internal/domain"
	"t2c/internal/notify"
	"t2c/internal/validation"
)

// notifyTimeLayout is the human-readable start time format used in creation
// notifications
const notifyTimeLayout = "02/01/2006 15:04:05"

// Importer orchestrates one source record end-to-end: resolve the entity
// chain level by level, upsert the time entry, and report the outcome. Each
// step is a hard dependency on the previous one succeeding.
type Importer struct {
	resolver      *Resolver
	upserter      *Upserter
	validator     *validation.RecordValidator
	notifier      notify.Notifier
	workspaceName string
	log           zerolog.Logger
}

// NewImporter creates a new record importer targeting the configured
// destination workspace
func NewImporter(resolver *Resolver, upserter *Upserter, notifier notify.Notifier, workspaceName string, log zerolog.Logger) *Importer {
	return &Importer{
		resolver:      resolver,
		upserter:      upserter,
		validator:     validation.NewRecordValidator(),
		notifier:      notifier,
		workspaceName: workspaceName,
		log:           log,
	}
}

// Import replays one source record at the destination. When the record's
// time entry already exists the import is a no-op reported as skipped.
func (i *Importer) Import(ctx context.Context, record domain.SourceRecord) (domain.ImportOutcome, error) {
	if err := i.validator.ValidateForImport(record); err != nil {
		return domain.ImportOutcome{}, err
	}

	chain, err := i.resolveChain(ctx, record)
	if err != nil {
		return domain.ImportOutcome{}, err
	}

	created, entryID, err := i.upserter.Upsert(ctx, chain, record)
	if err != nil {
		return domain.ImportOutcome{}, err
	}

	outcome := domain.ImportOutcome{
		Created:     created,
		TimeEntryID: entryID,
		Chain:       chain,
	}
	i.report(ctx, record, outcome)
	return outcome, nil
}

// resolveChain builds the destination entity chain for a record, level by
// level
func (i *Importer) resolveChain(ctx context.Context, record domain.SourceRecord) (domain.EntityChain, error) {
	var chain domain.EntityChain
	var err error

	chain.UserID, err = i.resolver.User(ctx)
	if err != nil {
		return domain.EntityChain{}, err
	}

	chain.WorkspaceID, err = i.resolver.Workspace(ctx, i.workspaceName)
	if err != nil {
		return domain.EntityChain{}, err
	}

	// The first element of the project's title chain is the client name;
	// the validator has already guaranteed it exists
	clientName, _ := record.ClientName()
	chain.ClientID, err = i.resolver.Client(ctx, chain.WorkspaceID, clientName)
	if err != nil {
		return domain.EntityChain{}, err
	}

	chain.ProjectID, err = i.resolver.Project(ctx, chain.WorkspaceID, chain.ClientID, record.Project.Title, record.Project.Color)
	if err != nil {
		return domain.EntityChain{}, err
	}

	chain.TaskID, err = i.resolver.Task(ctx, chain.UserID, chain.WorkspaceID, chain.ProjectID, record.TaskName())
	if err != nil {
		return domain.EntityChain{}, err
	}

	return chain, nil
}

// report emits the structured outcome and, on creation, notifies the sink.
// Notification failures are logged and never affect the import result.
func (i *Importer) report(ctx context.Context, record domain.SourceRecord, outcome domain.ImportOutcome) {
	event := i.log.Info().
		Bool("created", outcome.Created).
		Str("title", record.Title).
		Time("start", record.Start).
		Str("time_entry_id", outcome.TimeEntryID)

	if !outcome.Created {
		event.Msg("time entry skipped")
		return
	}
	event.Msg("time entry created")

	clientName, _ := record.ClientName()
	message := fmt.Sprintf("Clockify ADD: %s %s\n%s %s",
		clientName,
		record.Project.Title,
		record.Title,
		record.Start.Format(notifyTimeLayout),
	)
	if err := i.notifier.Notify(ctx, message); err != nil {
		i.log.Warn().Err(err).Msg("failed to deliver creation notification")
	}
}
