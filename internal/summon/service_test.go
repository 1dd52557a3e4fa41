package summon

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/gacha"
)

func lyra() *domain.Constellation {
	return &domain.Constellation{
		ID:            "lyra",
		Name:          "Lyra",
		BaseDropRates: domain.DropRates{Legendary: 1, Epic: 9, Rare: 30, Normal: 60},
		CharacterPool: map[domain.Rarity][]string{
			domain.RarityLegendary: {"vega"},
			domain.RarityEpic:      {"sheliak"},
			domain.RarityRare:      {"sulafat"},
			domain.RarityNormal:    {"delta-lyrae"},
		},
	}
}

var lyraNames = map[string]domain.Character{
	"vega":        {ID: "vega", Name: "Vega"},
	"sheliak":     {ID: "sheliak", Name: "Sheliak"},
	"sulafat":     {ID: "sulafat", Name: "Sulafat"},
	"delta-lyrae": {ID: "delta-lyrae", Name: "Delta Lyrae"},
}

type fixture struct {
	repo           *mockSummonRepo
	tx             *mockSummonTx
	constellations *mockConstellations
	svc            Service
}

func newFixture(rng gacha.RandomSource) *fixture {
	f := &fixture{
		repo:           new(mockSummonRepo),
		tx:             new(mockSummonTx),
		constellations: new(mockConstellations),
	}
	f.svc = NewService(f.repo, f.constellations, gacha.NewEngine(rng))
	return f
}

func TestPull_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newFixture(gacha.NewSeededRNG(11))

	f.constellations.On("Get", ctx, "lyra").Return(lyra(), nil)
	f.constellations.On("Characters", ctx, mock.Anything).Return(lyraNames, nil)
	f.repo.On("BeginTx", ctx).Return(f.tx, nil)
	f.tx.On("GetBalanceForUpdate", ctx, userID).Return(50, nil)
	f.tx.On("DebitKizunaStars", ctx, userID, 50).Return(0, nil)
	f.tx.On("InsertPullRecords", ctx, mock.Anything, mock.MatchedBy(func(o []domain.PullOutcome) bool {
		return len(o) == 10
	})).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)
	f.tx.On("Rollback", ctx).Return(nil)

	res, err := f.svc.Pull(ctx, userID, Request{ConstellationID: "lyra", PullCount: 10})
	require.NoError(t, err)

	assert.Equal(t, 50, res.TotalCost)
	assert.Equal(t, 0, res.RemainingBalance)
	assert.NotEqual(t, uuid.Nil, res.BatchID)
	require.Len(t, res.Characters, 10)
	for i, c := range res.Characters {
		require.NotNil(t, c.ID)
		require.NotNil(t, c.Name)
		assert.Equal(t, lyraNames[*c.ID].Name, *c.Name)
		assert.Equal(t, res.Outcomes[i].CharacterRarity, c.Rarity)
	}
	f.tx.AssertExpectations(t)
}

func TestPull_InsufficientCurrencyDoesNotDebit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newFixture(gacha.NewSeededRNG(11))

	f.constellations.On("Get", ctx, "lyra").Return(lyra(), nil)
	f.repo.On("BeginTx", ctx).Return(f.tx, nil)
	f.tx.On("GetBalanceForUpdate", ctx, userID).Return(50, nil)
	f.tx.On("Rollback", ctx).Return(nil)

	_, err := f.svc.Pull(ctx, userID, Request{ConstellationID: "lyra", PullCount: 11})

	require.ErrorIs(t, err, domain.ErrInsufficientCurrency)
	f.tx.AssertNotCalled(t, "DebitKizunaStars", mock.Anything, mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "InsertPullRecords", mock.Anything, mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
	f.tx.AssertCalled(t, "Rollback", ctx)
}

func TestPull_ConditionalDebitLosesRace(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newFixture(gacha.NewSeededRNG(11))

	f.constellations.On("Get", ctx, "lyra").Return(lyra(), nil)
	f.repo.On("BeginTx", ctx).Return(f.tx, nil)
	f.tx.On("GetBalanceForUpdate", ctx, userID).Return(5, nil)
	f.tx.On("DebitKizunaStars", ctx, userID, 5).Return(0, domain.ErrInsufficientCurrency)
	f.tx.On("Rollback", ctx).Return(nil)

	_, err := f.svc.Pull(ctx, userID, Request{ConstellationID: "lyra", PullCount: 1})

	require.ErrorIs(t, err, domain.ErrInsufficientCurrency)
	f.tx.AssertNotCalled(t, "InsertPullRecords", mock.Anything, mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPull_ConstellationNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(gacha.NewSeededRNG(1))
	f.constellations.On("Get", ctx, "andromeda").Return(nil, domain.ErrConstellationNotFound)

	_, err := f.svc.Pull(ctx, uuid.New(), Request{ConstellationID: "andromeda", PullCount: 1})

	require.ErrorIs(t, err, domain.ErrConstellationNotFound)
	f.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPull_InvalidCountSkipsDatabase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(gacha.NewSeededRNG(1))

	_, err := f.svc.Pull(ctx, uuid.New(), Request{ConstellationID: "lyra", PullCount: 0})

	require.ErrorIs(t, err, domain.ErrInvalidPullCount)
	f.constellations.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPull_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newFixture(gacha.NewSeededRNG(1))

	f.constellations.On("Get", ctx, "lyra").Return(lyra(), nil)
	f.repo.On("BeginTx", ctx).Return(f.tx, nil)
	f.tx.On("GetBalanceForUpdate", ctx, userID).Return(0, domain.ErrUserNotFound)
	f.tx.On("Rollback", ctx).Return(nil)

	_, err := f.svc.Pull(ctx, userID, Request{ConstellationID: "lyra", PullCount: 1})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPull_InsertFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newFixture(gacha.NewSeededRNG(1))

	f.constellations.On("Get", ctx, "lyra").Return(lyra(), nil)
	f.repo.On("BeginTx", ctx).Return(f.tx, nil)
	f.tx.On("GetBalanceForUpdate", ctx, userID).Return(10, nil)
	f.tx.On("DebitKizunaStars", ctx, userID, 5).Return(5, nil)
	f.tx.On("InsertPullRecords", ctx, mock.Anything, mock.Anything).Return(errors.New("disk full"))
	f.tx.On("Rollback", ctx).Return(nil)

	_, err := f.svc.Pull(ctx, userID, Request{ConstellationID: "lyra", PullCount: 1})

	require.Error(t, err)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
	f.tx.AssertCalled(t, "Rollback", ctx)
}

func TestPull_EmptyPoolHasNoName(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	c := lyra()
	c.CharacterPool[domain.RarityNormal] = nil
	f := newFixture(&gacha.SequenceRNG{Values: []float64{0.99}})

	f.constellations.On("Get", ctx, "lyra").Return(c, nil)
	f.repo.On("BeginTx", ctx).Return(f.tx, nil)
	f.tx.On("GetBalanceForUpdate", ctx, userID).Return(5, nil)
	f.tx.On("DebitKizunaStars", ctx, userID, 5).Return(0, nil)
	f.tx.On("InsertPullRecords", ctx, mock.Anything, mock.Anything).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)
	f.tx.On("Rollback", ctx).Return(nil)

	res, err := f.svc.Pull(ctx, userID, Request{ConstellationID: "lyra", PullCount: 1})
	require.NoError(t, err)

	require.Len(t, res.Characters, 1)
	assert.Nil(t, res.Characters[0].ID)
	assert.Nil(t, res.Characters[0].Name)
	assert.Equal(t, domain.RarityNormal, res.Characters[0].Rarity)
	f.constellations.AssertNotCalled(t, "Characters", mock.Anything, mock.Anything)
}

func TestPull_NameLookupFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newFixture(gacha.NewSeededRNG(3))

	f.constellations.On("Get", ctx, "lyra").Return(lyra(), nil)
	f.constellations.On("Characters", ctx, mock.Anything).Return(nil, errors.New("db down"))
	f.repo.On("BeginTx", ctx).Return(f.tx, nil)
	f.tx.On("GetBalanceForUpdate", ctx, userID).Return(5, nil)
	f.tx.On("DebitKizunaStars", ctx, userID, 5).Return(0, nil)
	f.tx.On("InsertPullRecords", ctx, mock.Anything, mock.Anything).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)
	f.tx.On("Rollback", ctx).Return(nil)

	res, err := f.svc.Pull(ctx, userID, Request{ConstellationID: "lyra", PullCount: 1})
	require.NoError(t, err)

	require.Len(t, res.Characters, 1)
	assert.NotNil(t, res.Characters[0].ID)
	assert.Nil(t, res.Characters[0].Name)
}

func TestHistory_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		in, want int
	}{
		{0, DefaultHistoryLimit},
		{-3, DefaultHistoryLimit},
		{10, 10},
		{MaxHistoryLimit + 1, MaxHistoryLimit},
	}
	for _, tt := range tests {
		f := newFixture(nil)
		f.repo.On("GetPullHistory", ctx, userID, tt.want).Return([]domain.PullRecord{}, nil)

		_, err := f.svc.History(ctx, userID, tt.in)
		require.NoError(t, err)
		f.repo.AssertExpectations(t)
	}
}
