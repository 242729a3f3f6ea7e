package paymentsvc

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
)

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) Begin(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type cardsMock struct {
	card    *model.Card
	updated int64
	updates int
}

func (m *cardsMock) Insert(ctx context.Context, c *model.Card) error {
	if m.card != nil {
		return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "cards_user_id_key"}
	}
	c.ID = 11
	m.card = c
	return nil
}

func (m *cardsMock) ByUser(ctx context.Context, userID int64) (*model.Card, error) {
	if m.card == nil {
		return nil, pgx.ErrNoRows
	}
	return m.card, nil
}

func (m *cardsMock) ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Card, error) {
	return m.ByUser(ctx, userID)
}

func (m *cardsMock) UpdateBalance(ctx context.Context, tx pgx.Tx, cardID int64, newBalance int64) error {
	m.updates++
	m.updated = newBalance
	return nil
}

// Luhn-valid test number.
const validNumber = "4242424242424242"

// --- tests ---

func TestAttachCard_Success(t *testing.T) {
	ctx := context.Background()
	m := &cardsMock{}
	svc := New(fakeDB{}, m)

	card, err := svc.AttachCard(ctx, 1, AttachCardInput{
		Number:      validNumber,
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), card.ID)
	require.Equal(t, int64(0), card.Balance)
	require.Equal(t, validNumber, card.Number)
}

func TestAttachCard_InvalidNumber(t *testing.T) {
	ctx := context.Background()
	svc := New(fakeDB{}, &cardsMock{})

	for _, number := range []string{"", "1234", "4242424242424241", "not-a-number"} {
		_, err := svc.AttachCard(ctx, 1, AttachCardInput{
			Number:      number,
			ExpiryMonth: 12,
			ExpiryYear:  2030,
			CVV:         "123",
		})
		require.Error(t, err, number)
		require.Equal(t, ErrInvalidCard, Code(err), number)
	}
}

func TestAttachCard_InvalidExpiry(t *testing.T) {
	ctx := context.Background()
	svc := New(fakeDB{}, &cardsMock{})

	_, err := svc.AttachCard(ctx, 1, AttachCardInput{
		Number: validNumber, ExpiryMonth: 13, ExpiryYear: 2030, CVV: "123",
	})
	require.Equal(t, ErrInvalidCard, Code(err))

	_, err = svc.AttachCard(ctx, 1, AttachCardInput{
		Number: validNumber, ExpiryMonth: 6, ExpiryYear: 2019, CVV: "123",
	})
	require.Equal(t, ErrInvalidCard, Code(err))
}

func TestAttachCard_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	m := &cardsMock{card: &model.Card{ID: 1, UserID: 1}}
	svc := New(fakeDB{}, m)

	_, err := svc.AttachCard(ctx, 1, AttachCardInput{
		Number: validNumber, ExpiryMonth: 12, ExpiryYear: 2030, CVV: "123",
	})
	require.Error(t, err)
	require.Equal(t, ErrCardExists, Code(err))
}

func TestCredit_Success(t *testing.T) {
	ctx := context.Background()
	m := &cardsMock{card: &model.Card{ID: 1, UserID: 1, Balance: 1000}}
	svc := New(fakeDB{}, m)

	card, err := svc.Credit(ctx, 1, 500)
	require.NoError(t, err)
	require.Equal(t, int64(1500), card.Balance)
	require.Equal(t, int64(1500), m.updated)
	require.Equal(t, 1, m.updates)
}

func TestCredit_ZeroAmount(t *testing.T) {
	ctx := context.Background()
	m := &cardsMock{card: &model.Card{ID: 1, UserID: 1, Balance: 1000}}
	svc := New(fakeDB{}, m)

	card, err := svc.Credit(ctx, 1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1000), card.Balance)
}

func TestCredit_NoCard(t *testing.T) {
	ctx := context.Background()
	svc := New(fakeDB{}, &cardsMock{})

	_, err := svc.Credit(ctx, 1, 500)
	require.Error(t, err)
	require.Equal(t, ErrNoCard, Code(err))
}

func TestCredit_NegativeAmount(t *testing.T) {
	ctx := context.Background()
	m := &cardsMock{card: &model.Card{ID: 1, UserID: 1, Balance: 1000}}
	svc := New(fakeDB{}, m)

	_, err := svc.Credit(ctx, 1, -100)
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
	require.Zero(t, m.updates)
}

func TestCard_Lookup(t *testing.T) {
	ctx := context.Background()

	_, err := New(fakeDB{}, &cardsMock{}).Card(ctx, 1)
	require.Equal(t, ErrNoCard, Code(err))

	m := &cardsMock{card: &model.Card{ID: 1, UserID: 1, Balance: 42}}
	card, err := New(fakeDB{}, m).Card(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(42), card.Balance)
}
