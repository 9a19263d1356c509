package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cotiza/internal/catalog"
	"github.com/alexanderramin/cotiza/internal/db"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/repository"
	"github.com/alexanderramin/cotiza/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	if len(r.events) == 0 {
		return UseCaseEvent{}
	}
	return r.events[len(r.events)-1]
}

type testSession struct {
	svc      QuoteService
	repo     *repository.SQLiteCustomProductRepo
	observer *recordingObserver
}

func newTestSession(t *testing.T) testSession {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newTestSessionWithUoW(t, database, testutil.NewTestUoW(database))
}

func newTestSessionWithUoW(t *testing.T, database db.DBTX, uow db.UnitOfWork) testSession {
	t.Helper()
	builtin, err := catalog.LoadBuiltin()
	require.NoError(t, err)

	repo := repository.NewSQLiteCustomProductRepo(database)
	obs := &recordingObserver{}
	return testSession{
		svc:      NewQuoteService(builtin, repo, uow, obs),
		repo:     repo,
		observer: obs,
	}
}

// lookupFailingRepo fails every GetByID with err; other calls pass through.
type lookupFailingRepo struct {
	repository.CustomProductRepo
	err error
}

func (r lookupFailingRepo) GetByID(context.Context, string) (domain.Product, error) {
	return domain.Product{}, r.err
}
