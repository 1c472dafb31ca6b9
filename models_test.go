package marketcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSymbolIdempotent(t *testing.T) {
	for _, in := range []string{"aapl", " AAPL ", "\tbrk.b\n", "", "  "} {
		once := NormalizeSymbol(in)
		assert.Equal(t, once, NormalizeSymbol(string(once)), "input %q", in)
	}
	assert.Equal(t, Symbol("AAPL"), NormalizeSymbol("  aapl "))
}

func TestNormalizeQuestionIdempotent(t *testing.T) {
	for _, in := range []string{"  Why is AAPL Up? ", "why is aapl up?", ""} {
		once := NormalizeQuestion(in)
		assert.Equal(t, once, NormalizeQuestion(once), "input %q", in)
	}
	assert.Equal(t, NormalizeQuestion("Why is AAPL up?"), NormalizeQuestion("  why is aapl UP?  "))
}

func TestHistoryKeyDefaultsRange(t *testing.T) {
	assert.Equal(t, NewHistoryKey("aapl", "1M"), NewHistoryKey("AAPL", ""))
	assert.Equal(t, "AAPL:6M", NewHistoryKey(" aapl", "6m").String())
}

func TestOutlookKey(t *testing.T) {
	assert.Equal(t, NewOutlookKey("msft", 0), NewOutlookKey("MSFT", -3))
	assert.NotEqual(t, NewOutlookKey("MSFT", 30), NewOutlookKey("MSFT", 0))
	assert.Equal(t, "MSFT", NewOutlookKey("msft", 0).String())
	assert.Equal(t, "MSFT:30d", NewOutlookKey("msft", 30).String())
}

func TestHistoryLatest(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	_, ok := History(nil).Latest()
	assert.False(t, ok)

	latest, ok := History{{Date: day(3), Close: 3}, {Date: day(5), Close: 5}, {Date: day(4), Close: 4}}.Latest()
	assert.True(t, ok)
	assert.Equal(t, 5.0, latest.Close)
}
