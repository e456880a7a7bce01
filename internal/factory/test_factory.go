package factory

import (
	"time"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/storage/memory"
	"github.com/mcoot/battleship-go/internal/testutil"
)

// TestSeed is the seed NewTestApp draws its randomness from
const TestSeed = 20240101

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: a mocked clock and
// seeded randomness, so two test apps play identical games
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies(store, mockClock, random.NewSeeded(TestSeed), Config{}, testutil.NopLogger())
	if err != nil {
		// The default configuration always validates
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
