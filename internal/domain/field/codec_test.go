package field

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etraxis/internal/domain/dictionary"
)

// fakePool is an in-memory content-addressed value pool shared by the
// decimal, string and text store fakes.
type fakePool struct {
	byValue map[string]uint
	byID    map[uint]string
	nextID  uint
}

func newFakePool() *fakePool {
	return &fakePool{byValue: make(map[string]uint), byID: make(map[uint]string)}
}

func (p *fakePool) GetOrCreate(ctx context.Context, value string) (uint, error) {
	if id, ok := p.byValue[value]; ok {
		return id, nil
	}
	p.nextID++
	p.byValue[value] = p.nextID
	p.byID[p.nextID] = value
	return p.nextID, nil
}

func (p *fakePool) GetByID(ctx context.Context, id uint) (string, error) {
	value, ok := p.byID[id]
	if !ok {
		return "", fmt.Errorf("no value with id %d", id)
	}
	return value, nil
}

type fakeListItems struct {
	items map[uint]dictionary.ListItem
}

func (f *fakeListItems) Save(ctx context.Context, item *dictionary.ListItem) error { return nil }

func (f *fakeListItems) GetByID(ctx context.Context, id uint) (*dictionary.ListItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("no list item with id %d", id)
	}
	return &item, nil
}

func (f *fakeListItems) FindByValue(ctx context.Context, fieldID uint, value int) (*dictionary.ListItem, error) {
	for _, item := range f.items {
		if item.FieldID == fieldID && item.Value == value {
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeListItems) ListByField(ctx context.Context, fieldID uint) ([]dictionary.ListItem, error) {
	return nil, nil
}

func (f *fakeListItems) DeleteByField(ctx context.Context, fieldID uint) error { return nil }

type fakeIssueFinder struct {
	existing map[uint]bool
}

func (f *fakeIssueFinder) Exists(ctx context.Context, issueID uint) (bool, error) {
	return f.existing[issueID], nil
}

func testStores() CodecStores {
	return CodecStores{
		Decimals: newFakePool(),
		Strings:  newFakePool(),
		Texts:    newFakePool(),
		Items: &fakeListItems{items: map[uint]dictionary.ListItem{
			7: {ID: 7, FieldID: 42, Value: 2, Text: "high"},
		}},
		Issues: &fakeIssueFinder{existing: map[uint]bool{100: true}},
	}
}

func codecFor(t *testing.T, typ Type, params Parameters) *Codec {
	t.Helper()
	f, err := ReconstructField(42, 5, "Field", "", typ, 0, false, false, params)
	require.NoError(t, err)
	return NewCodec(f, testStores())
}

func roundTrip(t *testing.T, c *Codec, human any) any {
	t.Helper()
	ctx := context.Background()
	encoded, ok, err := c.Encode(ctx, human, time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	decoded, err := c.Decode(ctx, encoded, time.UTC)
	require.NoError(t, err)
	return decoded
}

func TestCodec_RoundTrips(t *testing.T) {
	t.Run("checkbox", func(t *testing.T) {
		c := codecFor(t, TypeCheckbox, CheckboxParameters{})
		assert.Equal(t, true, roundTrip(t, c, true))
		assert.Equal(t, false, roundTrip(t, c, false))
	})

	t.Run("date", func(t *testing.T) {
		c := codecFor(t, TypeDate, DateParameters{Minimum: 0, Maximum: 14})
		assert.Equal(t, "2026-09-01", roundTrip(t, c, "2026-09-01"))
	})

	t.Run("decimal keeps its textual form", func(t *testing.T) {
		c := codecFor(t, TypeDecimal, DecimalParameters{Minimum: "0.00", Maximum: "100.00"})
		assert.Equal(t, "50.50", roundTrip(t, c, "50.50"))
		// Trailing zeros survive the round trip untouched.
		assert.Equal(t, "50.500", roundTrip(t, c, "50.500"))
	})

	t.Run("duration", func(t *testing.T) {
		c := codecFor(t, TypeDuration, DurationParameters{Minimum: "0:00", Maximum: "999999:59"})
		assert.Equal(t, "10:30", roundTrip(t, c, "10:30"))
	})

	t.Run("issue", func(t *testing.T) {
		c := codecFor(t, TypeIssue, IssueParameters{})
		assert.Equal(t, uint(100), roundTrip(t, c, uint(100)))
	})

	t.Run("list decodes to the item value", func(t *testing.T) {
		c := codecFor(t, TypeList, ListParameters{})
		assert.Equal(t, 2, roundTrip(t, c, 2))
	})

	t.Run("number", func(t *testing.T) {
		c := codecFor(t, TypeNumber, NumberParameters{Minimum: -100, Maximum: 100})
		assert.Equal(t, -42, roundTrip(t, c, -42))
	})

	t.Run("string", func(t *testing.T) {
		c := codecFor(t, TypeString, StringParameters{MaximumLength: 100})
		assert.Equal(t, "hello", roundTrip(t, c, "hello"))
	})

	t.Run("text", func(t *testing.T) {
		c := codecFor(t, TypeText, TextParameters{MaximumLength: 1000})
		assert.Equal(t, "a long story", roundTrip(t, c, "a long story"))
	})
}

func TestCodec_Encode_NilPassesThrough(t *testing.T) {
	c := codecFor(t, TypeNumber, NumberParameters{Minimum: 0, Maximum: 100})
	encoded, ok, err := c.Encode(context.Background(), nil, time.UTC)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, encoded)
}

func TestCodec_Encode_DanglingReferences(t *testing.T) {
	t.Run("unknown list value", func(t *testing.T) {
		c := codecFor(t, TypeList, ListParameters{})
		encoded, ok, err := c.Encode(context.Background(), 99, time.UTC)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, encoded)
	})

	t.Run("unknown issue", func(t *testing.T) {
		c := codecFor(t, TypeIssue, IssueParameters{})
		encoded, ok, err := c.Encode(context.Background(), uint(999), time.UTC)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, encoded)
	})
}

func TestCodec_Encode_ParameterViolations(t *testing.T) {
	t.Run("number out of range", func(t *testing.T) {
		c := codecFor(t, TypeNumber, NumberParameters{Minimum: 0, Maximum: 100})
		_, _, err := c.Encode(context.Background(), 500, time.UTC)
		require.Error(t, err)
	})

	t.Run("decimal out of range", func(t *testing.T) {
		c := codecFor(t, TypeDecimal, DecimalParameters{Minimum: "0.00", Maximum: "100.00"})
		_, _, err := c.Encode(context.Background(), "150.00", time.UTC)
		require.Error(t, err)
	})

	t.Run("duration out of range", func(t *testing.T) {
		c := codecFor(t, TypeDuration, DurationParameters{Minimum: "1:00", Maximum: "8:00"})
		_, _, err := c.Encode(context.Background(), "9:00", time.UTC)
		require.Error(t, err)
	})

	t.Run("string too long", func(t *testing.T) {
		c := codecFor(t, TypeString, StringParameters{MaximumLength: 5})
		_, _, err := c.Encode(context.Background(), "much too long", time.UTC)
		require.Error(t, err)
	})

	t.Run("length cap counts characters not bytes", func(t *testing.T) {
		// Six characters, twelve UTF-8 bytes.
		c := codecFor(t, TypeString, StringParameters{MaximumLength: 6})
		_, ok, err := c.Encode(context.Background(), "жёлтый", time.UTC)
		require.NoError(t, err)
		assert.True(t, ok)

		c = codecFor(t, TypeString, StringParameters{MaximumLength: 5})
		_, _, err = c.Encode(context.Background(), "жёлтый", time.UTC)
		require.Error(t, err)
	})

	t.Run("string format mismatch", func(t *testing.T) {
		c := codecFor(t, TypeString, StringParameters{MaximumLength: 100, PCRE: PCRE{Check: `^\d+$`}})
		_, _, err := c.Encode(context.Background(), "letters", time.UTC)
		require.Error(t, err)
	})
}

func TestCodec_Encode_DateUsesUserTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	c := codecFor(t, TypeDate, DateParameters{Minimum: 0, Maximum: 14})
	ctx := context.Background()

	utcEncoded, ok, err := c.Encode(ctx, "2026-09-01", time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	tokyoEncoded, ok, err := c.Encode(ctx, "2026-09-01", tokyo)
	require.NoError(t, err)
	require.True(t, ok)

	// The same calendar day starts at different instants in each zone.
	assert.NotEqual(t, *utcEncoded, *tokyoEncoded)
}

func TestCodec_DefaultValue(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("date default is an offset in days", func(t *testing.T) {
		def := 7
		c := codecFor(t, TypeDate, DateParameters{Minimum: 0, Maximum: 14, Default: &def})
		human, err := c.DefaultValue(ctx, createdAt, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2026-09-08", human)
	})

	t.Run("list default resolves to the item value", func(t *testing.T) {
		itemID := uint(7)
		c := codecFor(t, TypeList, ListParameters{DefaultItemID: &itemID})
		human, err := c.DefaultValue(ctx, createdAt, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 2, human)
	})

	t.Run("no default yields nil", func(t *testing.T) {
		c := codecFor(t, TypeNumber, NumberParameters{Minimum: 0, Maximum: 100})
		human, err := c.DefaultValue(ctx, createdAt, time.UTC)
		require.NoError(t, err)
		assert.Nil(t, human)
	})
}
