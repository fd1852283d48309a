//go:build integration

package repository

import (
	"context"
	"strconv"
	"testing"
	"time"

	"tala-trivia/internal/config"
	"tala-trivia/internal/database"
	"tala-trivia/internal/domain"
	"tala-trivia/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
)

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) *sqlx.DB {
	t.Helper()
	requireDocker(t)

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_USER": "trivia", "POSTGRES_PASSWORD": "trivia", "POSTGRES_DB": "trivia"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	db, err := database.NewSQLXDB(config.DBConfig{
		Host: host, Port: portNum, User: "trivia", Password: "trivia", DBName: "trivia", SSLMode: "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db.DB))
	return db
}

func TestPostgres_ScoringFlow(t *testing.T) {
	ctx := context.Background()
	db := startPostgres(t, ctx)

	users := NewSQLXUserRepository(db)
	questions := NewSQLXQuestionRepository(db)
	trivias := NewSQLXTriviaRepository(db)
	participations := NewSQLXParticipationRepository(db)
	answers := NewSQLXAnswerRepository(db)
	tm := NewTransactionManagerAdapter(db)

	user := domain.NewUser("ana", "ana@example.com", "Ana", domain.RolePlayer)
	user.ID = util.NewULID()
	require.NoError(t, users.CreateUser(ctx, user))

	q := &domain.Question{
		QuestionText: "Capital of Chile?",
		Difficulty:   domain.DifficultyHard,
		Options:      []domain.AnswerOption{{OptionText: "Santiago", IsCorrect: true}, {OptionText: "Lima"}},
	}
	require.NoError(t, tm.WithTransaction(ctx, func(ctx context.Context) error { return questions.CreateQuestion(ctx, q) }))

	tr := &domain.Trivia{Name: "Geography"}
	require.NoError(t, trivias.CreateTrivia(ctx, tr, []int64{q.ID}))
	ok, err := trivias.ContainsQuestion(ctx, tr.ID, q.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	var part *domain.Participation
	err = tm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := participations.LockUserTrivia(ctx, user.ID, tr.ID); err != nil {
			return err
		}
		part = &domain.Participation{UserID: user.ID, TriviaID: tr.ID}
		if err := participations.CreateParticipation(ctx, part); err != nil {
			return err
		}
		if err := answers.CreateAnswer(ctx, &domain.UserAnswer{
			UserID: user.ID, QuestionID: q.ID, SelectedOptionID: q.Options[0].ID,
			TriviaID: tr.ID, ParticipationID: part.ID, Points: 3,
		}); err != nil {
			return err
		}
		_, err := participations.AddScore(ctx, part.ID, 3)
		return err
	})
	require.NoError(t, err)

	// A second answer to the same question rolls back without scoring.
	err = tm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := answers.CreateAnswer(ctx, &domain.UserAnswer{
			UserID: user.ID, QuestionID: q.ID, SelectedOptionID: q.Options[0].ID,
			TriviaID: tr.ID, ParticipationID: part.ID, Points: 3,
		}); err != nil {
			return err
		}
		_, err := participations.AddScore(ctx, part.ID, 3)
		return err
	})
	assert.True(t, domain.IsCode(err, domain.CodeDuplicateAnswer))

	latest, err := participations.LatestParticipation(ctx, user.ID, tr.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 3, latest.Score)
	assert.Equal(t, "Geography", latest.TriviaName)

	ranked, err := participations.ListForRanking(ctx, domain.ParticipationFilter{TriviaID: tr.ID})
	require.NoError(t, err)
	board := domain.Rank(ranked)
	require.Len(t, board, 1)
	assert.Equal(t, "ana", board[0].User)
	assert.Equal(t, 3, board[0].TotalScore)
}

func TestPostgres_ConcurrentFirstSubmissions(t *testing.T) {
	ctx := context.Background()
	db := startPostgres(t, ctx)

	users := NewSQLXUserRepository(db)
	trivias := NewSQLXTriviaRepository(db)
	participations := NewSQLXParticipationRepository(db)
	tm := NewTransactionManagerAdapter(db)

	user := domain.NewUser("bea", "bea@example.com", "Bea", domain.RolePlayer)
	user.ID = util.NewULID()
	require.NoError(t, users.CreateUser(ctx, user))
	tr := &domain.Trivia{Name: "History"}
	require.NoError(t, trivias.CreateTrivia(ctx, tr, nil))

	const workers = 16
	var g errgroup.Group
	want := 0
	for i := 0; i < workers; i++ {
		points := i%3 + 1
		want += points
		g.Go(func() error {
			return tm.WithTransaction(ctx, func(ctx context.Context) error {
				if err := participations.LockUserTrivia(ctx, user.ID, tr.ID); err != nil {
					return err
				}
				p, err := participations.LatestParticipation(ctx, user.ID, tr.ID)
				if err != nil {
					return err
				}
				if p == nil {
					p = &domain.Participation{UserID: user.ID, TriviaID: tr.ID}
					if err := participations.CreateParticipation(ctx, p); err != nil {
						return err
					}
				}
				_, err = participations.AddScore(ctx, p.ID, points)
				return err
			})
		})
	}
	require.NoError(t, g.Wait())

	rows, total, err := participations.ListParticipations(ctx,
		domain.ParticipationFilter{TriviaID: tr.ID, UserID: user.ID}, domain.Pagination{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, want, rows[0].Score)
}
